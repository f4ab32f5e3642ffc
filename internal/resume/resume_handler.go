package resume

import (
	"fmt"
	"net/http"
	"strconv"

	employeeerrors "github.com/JuanDavidBarr/TalentoPlus/internal/employee/errors"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/apperror"
	"github.com/JuanDavidBarr/TalentoPlus/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("resume.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.handler")
	}
	return &Handler{service: service, logger: l}
}

// ForEmployee streams the résumé PDF for the employee in the path.
func (h *Handler) ForEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		errObj := employeeerrors.ErrInvalidEmployeeID
		response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
		return
	}

	h.write(c, uint(id))
}

// MyResume streams the résumé PDF of the authenticated employee.
func (h *Handler) MyResume(c *gin.Context) {
	employeeID := c.GetUint("employee_id")
	if employeeID == 0 {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Employee ID not found in token", nil)
		return
	}

	h.write(c, employeeID)
}

func (h *Handler) write(c *gin.Context, employeeID uint) {
	pdf, err := h.service.Generate(c.Request.Context(), employeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("generate resume failed",
			zap.Uint("employee_id", employeeID),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	filename := fmt.Sprintf("HojaDeVida_Empleado_%d.pdf", employeeID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
