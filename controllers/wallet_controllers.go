package controllers

import (
	"log"

	"jims/dto"
	"jims/models"
	"jims/response"
	"jims/services"
	"jims/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// walletFields is the shape shared by the GCash and PayMaya ledgers.
// The two tables stay separate; only the handler logic is collapsed.
type walletFields struct {
	Amount          float64
	ServiceCharge   float64
	TransactionType string
	ChargeMOP       string
	ReferenceNumber string
	Date            string
}

func walletFieldsFromCreate(req dto.CreateWalletRequest) walletFields {
	return walletFields{
		Amount:          *req.Amount,
		ServiceCharge:   req.ServiceCharge,
		TransactionType: req.TransactionType,
		ChargeMOP:       req.ChargeMOP,
		ReferenceNumber: req.ReferenceNumber,
		Date:            req.Date,
	}
}

// bindWalletCreate validates the shared e-wallet create payload and
// parses its date.
func bindWalletCreate(c *gin.Context) (walletFields, bool) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Amount, transaction type and date are required")
		return walletFields{}, false
	}

	fields := walletFieldsFromCreate(req)
	if err := validator.ValidateWalletAmounts(fields.Amount, fields.ServiceCharge, fields.TransactionType); err != nil {
		response.ValidationError(c, validationMessage(err))
		return walletFields{}, false
	}

	if _, err := services.ParseDate(fields.Date); err != nil {
		response.BadRequest(c, "Date must be YYYY-MM-DD")
		return walletFields{}, false
	}

	return fields, true
}

// GCashController manages the GCash ledger. Deletes are soft: the row
// keeps its deleted_at stamp and drops out of list queries.
type GCashController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewGCashController(db *gorm.DB, redisCli *redis.Client) GCashController {
	return GCashController{DB: db, Redis: redisCli}
}

func (gc GCashController) GetRecords(c *gin.Context) {
	ctx := c.Request.Context()

	var records []models.GCashRecord
	if err := services.GetFromRedis(ctx, gc.Redis, "gcash:all", &records); err != nil {
		log.Printf("Failed to read gcash cache: %v", err)
	}

	if len(records) == 0 {
		if err := gc.DB.Order("date DESC, id DESC").Find(&records).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, gc.Redis, "gcash:all", records, listCacheTTL); err != nil {
			log.Printf("Failed to cache gcash records: %v", err)
		}
	}

	responses := make([]dto.WalletResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, dto.WalletResponse{
			ID:              r.ID,
			Amount:          r.Amount,
			ServiceCharge:   r.ServiceCharge,
			TransactionType: r.TransactionType,
			ChargeMOP:       r.ChargeMOP,
			ReferenceNumber: r.ReferenceNumber,
			Date:            services.FormatDate(r.Date),
		})
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

func (gc GCashController) CreateRecord(c *gin.Context) {
	fields, ok := bindWalletCreate(c)
	if !ok {
		return
	}

	date, _ := services.ParseDate(fields.Date)
	record := models.GCashRecord{
		Amount:          fields.Amount,
		ServiceCharge:   fields.ServiceCharge,
		TransactionType: fields.TransactionType,
		ChargeMOP:       fields.ChargeMOP,
		ReferenceNumber: fields.ReferenceNumber,
		Date:            date,
	}

	if err := gc.DB.Create(&record).Error; err != nil {
		log.Printf("Failed to create gcash record: %v", err)
		response.ServerError(c)
		return
	}

	gc.invalidateCache(c)
	response.Success(c, gin.H{"id": record.ID})
}

func (gc GCashController) UpdateRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid record id")
		return
	}

	var record models.GCashRecord
	if err := gc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if req.Amount != nil {
		record.Amount = *req.Amount
	}
	if req.ServiceCharge != nil {
		record.ServiceCharge = *req.ServiceCharge
	}
	if req.TransactionType != "" {
		record.TransactionType = req.TransactionType
	}
	if req.ChargeMOP != "" {
		record.ChargeMOP = req.ChargeMOP
	}
	if req.ReferenceNumber != "" {
		record.ReferenceNumber = req.ReferenceNumber
	}
	if req.Date != "" {
		date, err := services.ParseDate(req.Date)
		if err != nil {
			response.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
		record.Date = date
	}

	if err := validator.ValidateWalletAmounts(record.Amount, record.ServiceCharge, record.TransactionType); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := gc.DB.Save(&record).Error; err != nil {
		log.Printf("Failed to update gcash record %d: %v", id, err)
		response.ServerError(c)
		return
	}

	gc.invalidateCache(c)
	response.Success(c, gin.H{"id": record.ID})
}

// DeleteRecord soft-deletes; a second delete of the same id finds no
// live row and returns 404.
func (gc GCashController) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid record id")
		return
	}

	var record models.GCashRecord
	if err := gc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := gc.DB.Delete(&record).Error; err != nil {
		log.Printf("Failed to delete gcash record %d: %v", id, err)
		response.ServerError(c)
		return
	}

	gc.invalidateCache(c)
	response.Success(c, gin.H{"id": id})
}

func (gc GCashController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), gc.Redis, "gcash:all"); err != nil {
		log.Printf("Failed to invalidate gcash cache: %v", err)
	}
}

// PayMayaController manages the PayMaya ledger. There is no delete
// route; the ledger only grows or gets corrected in place.
type PayMayaController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewPayMayaController(db *gorm.DB, redisCli *redis.Client) PayMayaController {
	return PayMayaController{DB: db, Redis: redisCli}
}

func (pc PayMayaController) GetRecords(c *gin.Context) {
	ctx := c.Request.Context()

	var records []models.PayMayaRecord
	if err := services.GetFromRedis(ctx, pc.Redis, "paymaya:all", &records); err != nil {
		log.Printf("Failed to read paymaya cache: %v", err)
	}

	if len(records) == 0 {
		if err := pc.DB.Order("date DESC, id DESC").Find(&records).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(ctx, pc.Redis, "paymaya:all", records, listCacheTTL); err != nil {
			log.Printf("Failed to cache paymaya records: %v", err)
		}
	}

	responses := make([]dto.WalletResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, dto.WalletResponse{
			ID:              r.ID,
			Amount:          r.Amount,
			ServiceCharge:   r.ServiceCharge,
			TransactionType: r.TransactionType,
			ChargeMOP:       r.ChargeMOP,
			ReferenceNumber: r.ReferenceNumber,
			Date:            services.FormatDate(r.Date),
		})
	}

	response.SuccessWithTotal(c, responses, len(responses))
}

func (pc PayMayaController) CreateRecord(c *gin.Context) {
	fields, ok := bindWalletCreate(c)
	if !ok {
		return
	}

	date, _ := services.ParseDate(fields.Date)
	record := models.PayMayaRecord{
		Amount:          fields.Amount,
		ServiceCharge:   fields.ServiceCharge,
		TransactionType: fields.TransactionType,
		ChargeMOP:       fields.ChargeMOP,
		ReferenceNumber: fields.ReferenceNumber,
		Date:            date,
	}

	if err := pc.DB.Create(&record).Error; err != nil {
		log.Printf("Failed to create paymaya record: %v", err)
		response.ServerError(c)
		return
	}

	pc.invalidateCache(c)
	response.Success(c, gin.H{"id": record.ID})
}

func (pc PayMayaController) UpdateRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid record id")
		return
	}

	var record models.PayMayaRecord
	if err := pc.DB.First(&record, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if req.Amount != nil {
		record.Amount = *req.Amount
	}
	if req.ServiceCharge != nil {
		record.ServiceCharge = *req.ServiceCharge
	}
	if req.TransactionType != "" {
		record.TransactionType = req.TransactionType
	}
	if req.ChargeMOP != "" {
		record.ChargeMOP = req.ChargeMOP
	}
	if req.ReferenceNumber != "" {
		record.ReferenceNumber = req.ReferenceNumber
	}
	if req.Date != "" {
		date, err := services.ParseDate(req.Date)
		if err != nil {
			response.BadRequest(c, "Date must be YYYY-MM-DD")
			return
		}
		record.Date = date
	}

	if err := validator.ValidateWalletAmounts(record.Amount, record.ServiceCharge, record.TransactionType); err != nil {
		response.ValidationError(c, validationMessage(err))
		return
	}

	if err := pc.DB.Save(&record).Error; err != nil {
		log.Printf("Failed to update paymaya record %d: %v", id, err)
		response.ServerError(c)
		return
	}

	pc.invalidateCache(c)
	response.Success(c, gin.H{"id": record.ID})
}

func (pc PayMayaController) invalidateCache(c *gin.Context) {
	if err := services.DeleteFromRedis(c.Request.Context(), pc.Redis, "paymaya:all"); err != nil {
		log.Printf("Failed to invalidate paymaya cache: %v", err)
	}
}
