package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"zentrix-api/internal/domain/report"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/interface/api/rest/validator"
)

const (
	msgInvalidJSON    = "JSON inválido"
	msgMissingData    = "Faltan datos requeridos"
	msgInvalidFilters = "Filtros inválidos"
	msgInvalidID      = "Identificador inválido"
	msgInternal       = "Error interno del servidor"
	msgUserNotFound   = "Usuario no encontrado"
	msgBadFormat      = "Formato no soportado"
)

func badRequest(c *gin.Context, message string, details map[string]string) {
	if details == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": message})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"details": details,
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
}

// userIDParam writes a 400 and returns false when the path id is not a positive integer.
func userIDParam(c *gin.Context) (user.ID, bool) {
	id, ok := validator.ParseID(c.Param(paramUserID))
	if !ok {
		badRequest(c, msgInvalidID, nil)
		return 0, false
	}
	return user.ID(id), true
}

// exportFormat reads ?format=, pdf when absent.
func exportFormat(c *gin.Context) (report.Format, bool) {
	f, err := report.ParseFormat(c.DefaultQuery("format", string(report.FormatPDF)))
	if err != nil {
		badRequest(c, msgBadFormat, map[string]string{"format": "pdf o xlsx"})
		return "", false
	}
	return f, true
}

func sendFile(c *gin.Context, f *report.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	c.Data(http.StatusOK, f.ContentType, f.Body)
}
