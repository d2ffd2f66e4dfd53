package controllers

import (
	"log"

	"jims/dto"
	"jims/models"
	"jims/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) CategoryController {
	return CategoryController{DB: db}
}

func (cc CategoryController) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

func (cc CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Name is required")
		return
	}

	category := models.Category{
		Name:  req.Name,
		Color: req.Color,
	}

	if err := cc.DB.Create(&category).Error; err != nil {
		log.Printf("Failed to create category: %v", err)
		response.Conflict(c)
		return
	}

	response.Success(c, toCategoryResponse(category))
}

func (cc CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category id")
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		log.Printf("Failed to update category %d: %v", id, err)
		response.Conflict(c)
		return
	}

	response.Success(c, toCategoryResponse(category))
}

func (cc CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid category id")
		return
	}

	var category models.Category
	if err := cc.DB.First(&category, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		log.Printf("Failed to delete category %d: %v", id, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

func toCategoryResponse(category models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
