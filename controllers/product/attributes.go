package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopworks/storefront-api/models"
)

type AttributeTypeInput struct {
	Name string `json:"name" binding:"required"`
}

type ProductAttributeInput struct {
	AttributeTypeID uint   `json:"attribute_type_id" binding:"required"`
	Value           string `json:"value" binding:"required"`
}

type ProductImageInput struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// POST /admin/attribute-types
func CreateAttributeType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AttributeTypeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		attributeType := models.AttributeType{Name: input.Name}
		if err := db.Create(&attributeType).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attribute type"})
			return
		}

		c.JSON(http.StatusCreated, attributeType)
	}
}

// GET /attribute-types
func GetAttributeTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var types []models.AttributeType
		if err := db.Order("name").Find(&types).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attribute types"})
			return
		}
		c.JSON(http.StatusOK, types)
	}
}

// POST /admin/products/:id/attributes
func AddProductAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductAttributeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var attributeType models.AttributeType
		if err := db.First(&attributeType, input.AttributeTypeID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attribute type does not exist"})
			return
		}

		attribute := models.ProductAttribute{
			ProductID:       product.ID,
			AttributeTypeID: attributeType.ID,
			Value:           input.Value,
		}
		if err := db.Create(&attribute).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product attribute"})
			return
		}
		attribute.AttributeType = attributeType

		c.JSON(http.StatusCreated, attribute)
	}
}

// DELETE /admin/products/:id/attributes/:attrID
func DeleteProductAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.
			Where("product_id = ?", c.Param("id")).
			Delete(&models.ProductAttribute{}, c.Param("attrID"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product attribute"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product attribute not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product attribute deleted"})
	}
}

// POST /admin/products/:id/images
func AddProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		image := models.ProductImage{ProductID: product.ID, ImageURL: input.ImageURL}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product image"})
			return
		}

		c.JSON(http.StatusCreated, image)
	}
}

// DELETE /admin/products/:id/images/:imageID
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.
			Where("product_id = ?", c.Param("id")).
			Delete(&models.ProductImage{}, c.Param("imageID"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product image"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product image not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product image deleted"})
	}
}
