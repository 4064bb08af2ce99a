// server/server.go
package server

import (
	"net/http"
	"net/rpc"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/wfunc/coloretto/broadcast"
	"github.com/wfunc/coloretto/logger"
	"github.com/wfunc/coloretto/monitor"
	coloretto_rpc "github.com/wfunc/coloretto/rpc"
	"github.com/wfunc/coloretto/services"
	"github.com/wfunc/coloretto/session"
)

type GameServer struct {
	addr      string
	engine    *gin.Engine
	service   *services.RoomService
	hub       *broadcast.Hub
	mon       *monitor.Monitor
	rpcServer *coloretto_rpc.Server
	upgrader  websocket.Upgrader
}

func NewGameServer(addr, rpcAddr string, service *services.RoomService) *GameServer {
	hub := broadcast.NewHub()
	service.SetNotifier(hub)

	s := &GameServer{
		addr:    addr,
		service: service,
		hub:     hub,
		mon:     monitor.NewMonitor("coloretto", hub.Watchers),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	rpcServer, err := coloretto_rpc.NewServer(rpcAddr)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	adminService := coloretto_rpc.NewAdminService(service)
	rpc.Register(adminService)

	s.engine = s.buildRouter()
	return s
}

func (s *GameServer) buildRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(session.Identify())

	r.GET("/new", s.handleNew)
	r.GET("/join/:room", s.handleJoin)
	r.GET("/leave/:room", s.handleLeave)
	r.GET("/start/:room", s.handleStart)
	r.GET("/status/:room", s.handleStatus)
	r.GET("/perform/:room/:action", s.handlePerform)
	r.GET("/watch/:room", s.handleWatch)

	return r
}

// Monitor exposes the server's metrics endpoint starter.
func (s *GameServer) Monitor() *monitor.Monitor {
	return s.mon
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()

	logger.Log.Infof("Game server listening on %s", s.addr)
	return s.engine.Run(s.addr)
}

func (s *GameServer) Shutdown() {
	s.rpcServer.Stop()
}
