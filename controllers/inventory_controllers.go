package controllers

import (
	"log"
	"strings"

	"jims/constants"
	"jims/dto"
	"jims/models"
	"jims/response"
	"jims/services"
	"jims/services/notification"
	"jims/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	inventoryCacheKey  = "inventory:all"
	inventoryPageLimit = 10
)

type InventoryController struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Notifier   notification.Service
}

func NewInventoryController(db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, notifier notification.Service) InventoryController {
	return InventoryController{
		DB:         db,
		Redis:      redisCli,
		Cloudinary: cld,
		Notifier:   notifier,
	}
}

// GetInventory lists items with category/status filters and
// pagination over the cached full list.
func (ic InventoryController) GetInventory(c *gin.Context) {
	page, limit := parsePagination(c, inventoryPageLimit)
	categoryFilter := c.Query("category")
	statusFilter := c.Query("status")
	search := c.Query("search")

	items, err := ic.loadItems(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if categoryFilter != "" && !strings.HasPrefix(categoryFilter, "All") && item.Category != categoryFilter {
			continue
		}
		if statusFilter != "" && !strings.HasPrefix(statusFilter, "All") && item.Status != statusFilter {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.ProductName), strings.ToLower(search)) {
			continue
		}
		filtered = append(filtered, item)
	}

	pageItems := services.Paginate(filtered, page, limit)

	responses := make([]dto.InventoryResponse, 0, len(pageItems))
	for _, item := range pageItems {
		responses = append(responses, toInventoryResponse(item))
	}

	response.SuccessWithPagination(c, responses, page, limit, len(filtered))
}

func (ic InventoryController) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toInventoryResponse(item))
}

// CreateItem derives status and totalAmount server-side; client
// values for those fields are ignored.
func (ic InventoryController) CreateItem(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Product name, stock and price are required")
		return
	}

	item := models.InventoryItem{
		ProductName:  req.ProductName,
		Category:     req.Category,
		Stock:        *req.Stock,
		ProductPrice: *req.ProductPrice,
		ImageURL:     req.ImageURL,
	}
	services.ApplyDerivedFields(&item)

	if err := validator.ValidateInventoryItem(&item); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		log.Printf("Failed to create inventory item: %v", err)
		response.ServerError(c)
		return
	}

	ic.invalidateCache(c)
	ic.broadcastIfLow(item)
	response.Success(c, toInventoryResponse(item))
}

func (ic InventoryController) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if req.ProductName != "" {
		item.ProductName = req.ProductName
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.ProductPrice != nil {
		item.ProductPrice = *req.ProductPrice
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	services.ApplyDerivedFields(&item)

	if err := validator.ValidateInventoryItem(&item); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		log.Printf("Failed to update inventory item %d: %v", id, err)
		response.ServerError(c)
		return
	}

	ic.invalidateCache(c)
	ic.broadcastIfLow(item)
	response.Success(c, toInventoryResponse(item))
}

// DeleteItem removes the row permanently
func (ic InventoryController) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := ic.DB.Delete(&item).Error; err != nil {
		log.Printf("Failed to delete inventory item %d: %v", id, err)
		response.ServerError(c)
		return
	}

	ic.invalidateCache(c)
	response.Success(c, gin.H{"id": id})
}

// SearchInventory fuzzy-matches the query against product names and
// categories and returns items ordered by score.
func (ic InventoryController) SearchInventory(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	items, err := ic.loadItems(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchInventory(query, items)

	responses := make([]dto.InventoryResponse, 0, len(scored))
	for _, s := range scored {
		responses = append(responses, toInventoryResponse(s.Item))
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

// UploadImage pushes a product photo to Cloudinary and returns the
// hosted URL for the client to attach on create/update.
func (ic InventoryController) UploadImage(c *gin.Context) {
	if ic.Cloudinary == nil {
		response.BadRequest(c, "Image upload is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer file.Close()

	uploadResult, err := ic.Cloudinary.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		Folder: "jims/products",
	})
	if err != nil {
		log.Printf("Failed to upload image: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": uploadResult.SecureURL})
}

func (ic InventoryController) loadItems(c *gin.Context) ([]models.InventoryItem, error) {
	ctx := c.Request.Context()

	var items []models.InventoryItem
	if err := services.GetFromRedis(ctx, ic.Redis, inventoryCacheKey, &items); err != nil {
		log.Printf("Failed to read inventory cache: %v", err)
	}

	if len(items) == 0 {
		if err := ic.DB.Order("id").Find(&items).Error; err != nil {
			return nil, err
		}

		if err := services.SetToRedis(ctx, ic.Redis, inventoryCacheKey, items, listCacheTTL); err != nil {
			log.Printf("Failed to cache inventory: %v", err)
		}
	}

	return items, nil
}

func (ic InventoryController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), ic.Redis, inventoryCacheKey); err != nil {
		log.Printf("Failed to invalidate inventory cache: %v", err)
	}
}

// broadcastIfLow pushes a websocket alert when a write leaves an item
// low or out of stock.
func (ic InventoryController) broadcastIfLow(item models.InventoryItem) {
	if ic.Notifier == nil || item.Status == constants.StockStatusIn {
		return
	}

	message := notification.NewStockAlertBuilder(item.ProductName, item.Stock, item.Status).Build()
	if err := ic.Notifier.SendMessage(message); err != nil {
		log.Printf("Failed to broadcast stock alert: %v", err)
	}
}

func toInventoryResponse(item models.InventoryItem) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:           item.ID,
		ProductName:  item.ProductName,
		Category:     item.Category,
		Stock:        item.Stock,
		Status:       item.Status,
		ProductPrice: item.ProductPrice,
		TotalAmount:  item.TotalAmount,
		ImageURL:     item.ImageURL,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
