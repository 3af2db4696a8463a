package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/h33n313/nazarsanji-omidhospital/config"
	"github.com/h33n313/nazarsanji-omidhospital/middleware"
	"github.com/h33n313/nazarsanji-omidhospital/module/analytics"
	"github.com/h33n313/nazarsanji-omidhospital/module/schema"
	"github.com/h33n313/nazarsanji-omidhospital/module/submission"
)

func main() {

	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// 初始化答卷存储
	config.InitStore()

	// 初始化答卷服务模块
	submission.InitService()
	log.Println("答卷服务已初始化")

	// 启动时播种：新部署自动注入演示数据，重复执行幂等
	submission.SeedDatabase(submission.DefaultRepository())

	// 初始化统计模块
	analytics.InitService(submission.Default())
	log.Println("统计服务已初始化")

	// 启动存储定时备份任务
	startStoreBackupScheduler()

	// 主应用 Gin 路由器
	router := gin.New()

	// 设置可信代理
	trusted := config.LoadTrustedProxies()
	if err := router.SetTrustedProxies(trusted); err != nil {
		log.Fatalf("设置可信代理失败: %v", err)
	}

	router.Use(gin.Recovery())
	router.Use(
		middleware.CorsMiddleware(),
		middleware.RateLimitMiddleware(),
		middleware.SecurityHeadersMiddleware(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		// 答卷相关API
		apiGroup.GET("/surveys", submission.GetSubmissionsHandler)
		apiGroup.POST("/surveys", submission.SubmitSubmissionHandler)
		// 问卷定义
		apiGroup.GET("/schema", schema.GetSchemaHandler)
		// 统计相关API
		apiGroup.GET("/analytics/overview", analytics.GetOverviewHandler)
		apiGroup.GET("/analytics/submit-trend", analytics.GetSubmitTrendHandler)
		apiGroup.GET("/analytics/recent", analytics.GetRecentSubmissionsHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// 启动服务器
	startServer(router, port)
}

// startStoreBackupScheduler 启动存储文件定时备份任务
func startStoreBackupScheduler() {
	cronExpr := os.Getenv("STORE_BACKUP_CRON")
	if cronExpr == "" {
		cronExpr = "0 0 * * *" // 默认每天凌晨执行
	}

	backupDir := os.Getenv("STORE_BACKUP_DIR")
	if backupDir == "" {
		backupDir = "backups"
	}

	c := cron.New()
	_, err := c.AddFunc(cronExpr, func() {
		dst := filepath.Join(backupDir, fmt.Sprintf("db-%s.json", time.Now().Format("20060102-150405")))
		if err := submission.DefaultRepository().Backup(dst); err != nil {
			log.Printf("答卷存储备份失败: %v", err)
			return
		}
		log.Printf("答卷存储已备份到 %s", dst)
	})
	if err != nil {
		log.Printf("启动存储备份计划任务失败: %v", err)
		return
	}

	c.Start()
	log.Printf("存储备份计划任务已启动，Cron表达式: %s, 备份目录: %s", cronExpr, backupDir)
}

// startServer 启动HTTP/HTTPS服务器
func startServer(router *gin.Engine, port string) {
	httpsEnabled := os.Getenv("HTTPS_ENABLED") == "true"
	sslCertFile := os.Getenv("SSL_CERT_FILE")
	sslKeyFile := os.Getenv("SSL_KEY_FILE")
	httpsPort := os.Getenv("HTTPS_PORT")

	if httpsEnabled && sslCertFile != "" && sslKeyFile != "" {
		if _, err := os.Stat(sslCertFile); os.IsNotExist(err) {
			log.Printf("警告: SSL证书文件不存在: %s，回退到HTTP模式", sslCertFile)
			startHTTPServer(router, port)
			return
		}
		if _, err := os.Stat(sslKeyFile); os.IsNotExist(err) {
			log.Printf("警告: SSL私钥文件不存在: %s，回退到HTTP模式", sslKeyFile)
			startHTTPServer(router, port)
			return
		}

		if httpsPort == "" {
			httpsPort = "443"
		}
		startHTTPSServer(router, httpsPort, sslCertFile, sslKeyFile)
	} else {
		if !httpsEnabled {
			log.Printf("HTTPS已禁用，启动HTTP模式")
		} else {
			log.Printf("HTTPS配置不完整，回退到HTTP模式")
		}
		startHTTPServer(router, port)
	}
}

// startHTTPServer 启动HTTP服务器
func startHTTPServer(router *gin.Engine, port string) {
	log.Printf("启动HTTP服务器，端口: %s", port)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP服务器启动失败: %v", err)
		}
	}()

	gracefulShutdown(server)
}

// startHTTPSServer 启动HTTPS服务器
func startHTTPSServer(router *gin.Engine, httpsPort, certFile, keyFile string) {
	log.Printf("启动HTTPS服务器，端口: %s", httpsPort)

	server := &http.Server{
		Addr:    ":" + httpsPort,
		Handler: router,
		TLSConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTPS服务器启动失败: %v", err)
		}
	}()

	gracefulShutdown(server)
}

// gracefulShutdown 优雅关闭服务器
func gracefulShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器强制关闭: %v", err)
	}

	log.Println("服务器已关闭")
}
