// Package mysql initializes the relational store: connection,
// automatic schema migration, and the Repository layer.
package mysql

import (
	"fmt"

	"imovel_hub_server/internal/config"
	"imovel_hub_server/internal/dao/mysql/repository"
	"imovel_hub_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the MySQL connection, migrates the schema and returns the
// Repository aggregate. Fatal on connection or migration failure.
func Init() *repository.Repositories {
	conf := config.GetConfig()

	// user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	if err := Migrate(db); err != nil {
		zap.L().Fatal(err.Error())
	}

	return repository.NewRepositories(db)
}

// Migrate runs AutoMigrate for every entity. Exposed separately so
// tests can migrate an alternative database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserInfo{},
		&model.Property{},
		&model.Unit{},
		&model.VisitRequest{},
		&model.ReservationRequest{},
		&model.RequestAgent{},
		&model.AgentApplication{},
		&model.Favorite{},
	)
}
