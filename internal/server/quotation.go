package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/quotation/internal/quotation/display"
	quotationdomain "github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/smallbiznis/quotation/pkg/db/pagination"
)

type createQuotationRequest struct {
	Company quotationdomain.PartyDetails `json:"company"`
	Client  quotationdomain.PartyDetails `json:"client"`
	Items   []quotationdomain.ItemInput  `json:"items"`
}

func (s *Server) CreateQuotation(c *gin.Context) {
	var req createQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.Create(c.Request.Context(), quotationdomain.CreateQuotationRequest{
		Company: req.Company,
		Client:  req.Client,
		Items:   req.Items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     resp,
		"view_url": s.viewURL(resp.ID.String()),
	})
}

func (s *Server) ListQuotations(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status     string `form:"status"`
		ClientName string `form:"client_name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.quotationSvc.List(c.Request.Context(), quotationdomain.ListQuotationRequest{
		PageToken:  query.PageToken,
		PageSize:   query.PageSize,
		Status:     quotationdomain.QuotationStatus(strings.TrimSpace(query.Status)),
		ClientName: strings.TrimSpace(query.ClientName),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp.Quotations, "page_info": resp.PageInfo})
}

func (s *Server) GetQuotation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	item, err := s.quotationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": display.FromQuotation(item)})
}

func (s *Server) DownloadQuotationPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	doc, err := s.quotationSvc.ExportPDF(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

func (s *Server) viewURL(id string) string {
	return s.cfg.BaseURL + "/view-quotation.html?id=" + url.QueryEscape(id)
}
