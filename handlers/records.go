package handlers

import (
	"net/http"
	"strconv"

	recordsRepo "meetsync/database/repository/records"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

const maxRecordsPageSize = 100

var recordsRepository recordsRepo.BookingRecordRepository

// SetRecordsRepo injects the booking record repository.
func SetRecordsRepo(repo recordsRepo.BookingRecordRepository) {
	recordsRepository = repo
}

// ListRecords returns the most recent booking records, newest first.
func ListRecords(c *gin.Context) {
	limit := int64(20)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 || n > maxRecordsPageSize {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit", "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := recordsRepository.GetRecent(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking records", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}
