package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AutoHubWeb/AdminPanel/internal/services"
)

// TransactionsHandler 处理交易查询相关的API请求，交易只读
type TransactionsHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionsHandler 创建交易处理器
func NewTransactionsHandler(transactionService *services.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{transactionService: transactionService}
}

// FindAll 获取交易列表
func (h *TransactionsHandler) FindAll(c *gin.Context) {
	params, err := bindPagination(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	transactions, totalItems, err := h.transactionService.FindAll(params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, listData(transactions, totalItems, params), "Success")
}

// FindOne 获取单笔交易
func (h *TransactionsHandler) FindOne(c *gin.Context) {
	transaction, err := h.transactionService.FindByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, transaction, "Success")
}
