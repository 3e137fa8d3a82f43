package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"article-hub/backend/api/handler"
	"article-hub/backend/api/middleware"
	"article-hub/backend/api/route"
	"article-hub/backend/common"
	"article-hub/backend/model"
	"article-hub/backend/service"
	"article-hub/backend/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog("article-hub " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// A port given on the command line wins over the PORT key in config.ini.
	portFromFlag := 0
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "port" {
			portFromFlag = *common.Port
		}
	})
	if err := common.InitConfig(); err != nil {
		common.FatalLog(err)
	}
	if portFromFlag != 0 {
		*common.Port = portFromFlag
	}
	if common.JWTSecret == "" {
		common.FatalLog("JWT_SECRET is not configured")
	}

	if err := common.InitRedisClient(); err != nil {
		common.FatalLog(err)
	}

	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
	}()

	handler.InitArticleService(service.NewArticleService(store.New(model.DB)))
	handler.RegisterCustomValidators()

	server := gin.Default()
	server.Use(middleware.CORS())

	if common.RedisEnabled {
		opt := common.ParseRedisOption()
		sessionStore, err := redis.NewStore(opt.MinIdleConns, opt.Network, opt.Addr, opt.Username, opt.Password, []byte(common.SessionSecret))
		if err != nil {
			common.FatalLog("failed to initialize redis session store: " + err.Error())
		}
		server.Use(sessions.Sessions("session", sessionStore))
	} else {
		sessionStore := cookie.NewStore([]byte(common.SessionSecret))
		server.Use(sessions.Sessions("session", sessionStore))
	}

	route.SetRouter(server)
	server.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(404, gin.H{
				"success": false,
				"message": "API route not found",
			})
		} else {
			c.Status(404)
		}
	})

	port := strconv.Itoa(*common.Port)
	common.SysLog("server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}
