package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/api"
	"github.com/AutoHubWeb/AdminPanel/internal/auth"
	"github.com/AutoHubWeb/AdminPanel/internal/config"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
	"github.com/AutoHubWeb/AdminPanel/internal/registry"
	"github.com/AutoHubWeb/AdminPanel/internal/services"
	"github.com/AutoHubWeb/AdminPanel/internal/storage"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/objectstore"
)

func main() {
	memoryMode := flag.Bool("memory", false, "使用内存存储，跳过Postgres和MinIO")
	fixturesPath := flag.String("fixtures", "", "内存模式下加载的JSON夹具文件")
	flag.Parse()

	// 获取配置文件路径
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}

	// 加载配置
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		panic("加载配置失败: " + err.Error())
	}

	// 初始化日志
	log, err := logger.New(cfg.Log, "admin-service")
	if err != nil {
		panic("初始化日志失败: " + err.Error())
	}
	log.Info("管理服务启动中...")

	// 初始化存储层
	var repos *storage.Repositories
	var store objectstore.ObjectStore

	if *memoryMode {
		memStore := memory.NewStore()
		if *fixturesPath != "" {
			if err := memStore.LoadFixtures(*fixturesPath); err != nil {
				log.Fatal("加载夹具失败: %v", err)
			}
			log.Info("已加载夹具: %s", *fixturesPath)
		}
		repos = storage.NewMemoryRepositories(memStore)

		store, err = objectstore.NewLocalStore("./uploads", cfg.Storage.PublicURL)
		if err != nil {
			log.Fatal("初始化本地存储失败: %v", err)
		}
	} else {
		db, err := storage.NewDBConnection(cfg.Database)
		if err != nil {
			log.Fatal("连接数据库失败: %v", err)
		}
		if err := storage.InitSchema(db); err != nil {
			log.Fatal("初始化数据库结构失败: %v", err)
		}
		repos = storage.NewRepositories(db)

		store, err = objectstore.NewMinioStore(cfg.Storage)
		if err != nil {
			log.Fatal("初始化对象存储失败: %v", err)
		}
	}
	defer repos.Close()

	// 初始化Kafka生产者
	var producer messaging.Producer
	if cfg.Kafka.Enable {
		kafkaProducer, err := messaging.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("初始化Kafka生产者失败: %v", err)
		}
		producer = kafkaProducer
	} else {
		producer = messaging.NopProducer{}
	}
	defer producer.Close()

	// 初始化JWT服务
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// 初始化服务层
	svc := api.Services{
		User:        services.NewUserService(repos.UserRepository, producer, log),
		Tool:        services.NewToolService(repos.ToolRepository, repos.FileRepository, producer, log),
		Vps:         services.NewVpsService(repos.VpsRepository, producer, log),
		Proxy:       services.NewProxyService(repos.ProxyRepository, producer, log),
		Order:       services.NewOrderService(repos.OrderRepository, producer, log),
		Transaction: services.NewTransactionService(repos.TransactionRepository),
		File:        services.NewFileService(repos.FileRepository, store, log),
	}
	svc.Dashboard = services.NewDashboardService(
		repos.UserRepository,
		repos.ToolRepository,
		repos.VpsRepository,
		repos.ProxyRepository,
		repos.OrderRepository,
	)

	// 初始化API路由
	router := api.NewRouter(cfg, svc, jwtService)

	serverPort := cfg.Server.Port
	server := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	// 注册到Nacos
	var reg *registry.Registry
	if cfg.Nacos.Enable {
		reg, err = registry.New(cfg.Nacos)
		if err != nil {
			log.Warn("初始化Nacos客户端失败: %v", err)
		} else {
			port, _ := strconv.Atoi(serverPort)
			if err := reg.Register(port); err != nil {
				log.Warn("注册服务到Nacos失败: %v", err)
			} else {
				log.Info("已注册到Nacos，服务名: %s, 端口: %d", cfg.Nacos.ServiceName, port)
			}
		}
	}

	// 在goroutine中启动服务器，以便不阻塞信号处理
	go func() {
		log.Info("管理服务已启动，端口: %s", serverPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("监听错误: %v", err)
		}
	}()

	// 等待中断信号优雅关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭管理服务...")

	// 从Nacos注销服务
	if reg != nil {
		if err := reg.Deregister(); err != nil {
			log.Warn("从Nacos注销服务失败: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("服务器关闭错误: %v", err)
	}

	log.Info("管理服务已关闭")
}
