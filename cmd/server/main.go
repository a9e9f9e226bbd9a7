package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"attendly.com/attendly/config"
	"attendly.com/attendly/core"
	"attendly.com/attendly/storage"
	"attendly.com/attendly/web/handlers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal(err)
	}
	coreCfg, err := cfg.CoreConfig()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("office start %s, grace %dm, max break %dm, timezone %s\n",
		coreCfg.OfficeStart, coreCfg.GraceMinutes, coreCfg.MaxBreakMinutes, coreCfg.Location)

	db, err := storage.Open(cfg.DSN, logger.Warn)
	if err != nil {
		log.Fatal(err)
	}
	store := storage.NewStore(db)
	svc := core.NewService(store, coreCfg)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api/v1")
	handlers.Register(api, svc, store)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
