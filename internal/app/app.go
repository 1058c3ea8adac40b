package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saiventuri/EmployeeManagement/internal/config"
	"github.com/saiventuri/EmployeeManagement/internal/employee"
	"github.com/saiventuri/EmployeeManagement/internal/shared/connection"
	"github.com/saiventuri/EmployeeManagement/internal/user"
)

// BuildApp connects the infrastructure, migrates the schema, and wires
// every module onto the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(db); err != nil {
		return err
	}

	return registerModules(router, db, cfg)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&user.User{},
		&user.Role{},
		&user.UserRole{},
	)
}
