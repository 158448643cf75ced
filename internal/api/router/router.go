package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-records/config"
	"hr-records/internal/api/handler"
	"hr-records/internal/api/middleware"
	"hr-records/pkg/jwt"
	"hr-records/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger))
	}

	// ── health ──
	r.GET("/health", h.Health.Health)

	api := r.Group("")
	if cfg.Auth.Enabled {
		api.Use(middleware.JWTAuth(jwtMgr))
	}

	// departments
	departments := api.Group("/departament")
	{
		departments.POST("/cadastrar", h.Department.CreateDepartment)
		departments.GET("/listar", h.Department.ListDepartments)
		departments.PUT("/editar/:id", h.Department.UpdateDepartment)
		departments.DELETE("/excluir/:id", h.Department.DeleteDepartment)
		departments.GET("/busca_por_id/:id", h.Department.GetDepartment)
	}

	// employees
	employees := api.Group("/colaborador")
	{
		employees.POST("/cadastrar", h.Employee.CreateEmployee)
		employees.GET("/departamento/:department_id/colaboradores", h.Employee.ListByDepartment)
		employees.GET("/departamento/:department_id/exportar", h.Export.ExportDepartmentRoster)
		employees.PUT("/editar/:id", h.Employee.UpdateEmployee)
		employees.DELETE("/excluir/:id", h.Employee.DeleteEmployee)
		employees.GET("/busca_por_id/:id", h.Employee.GetEmployee)
	}

	return r
}
