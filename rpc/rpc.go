package rpc

import (
	"context"
	"net"
	"net/rpc"
	"time"

	"github.com/wfunc/coloretto/logger"
	"github.com/wfunc/coloretto/services"
	"github.com/wfunc/coloretto/session"
)

// Server manages the RPC listener for the admin surface.
type Server struct {
	listener net.Listener
	address  string
}

// NewServer creates a new RPC server.
func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// AdminService exposes operational lookups over net/rpc. Methods follow the
// net/rpc signature: exported method, exported arguments, pointer reply.
type AdminService struct {
	roomService *services.RoomService
}

// NewAdminService creates a new AdminService.
func NewAdminService(rs *services.RoomService) *AdminService {
	return &AdminService{roomService: rs}
}

type RoomStatusArgs struct {
	Code string
}

type RoomStatusReply struct {
	Status  string
	Players []string
	Turn    int
}

// RoomStatus reports the lifecycle phase and roster of a room.
func (as *AdminService) RoomStatus(args *RoomStatusArgs, reply *RoomStatusReply) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := as.roomService.Status(ctx, args.Code)
	if err != nil {
		return err
	}

	reply.Players = make([]string, len(r.Players))
	for i, u := range r.Players {
		reply.Players[i] = u.String()
	}
	if r.Status.Waiting() {
		reply.Status = "waiting"
	} else {
		reply.Status = "playing"
		reply.Turn = r.Status.Playing.Turn
	}
	return nil
}

type PlayerGamesArgs struct {
	Player string
}

type PlayerGamesReply struct {
	Games int64
}

// PlayerGames reports how many recorded games an identity has played in.
func (as *AdminService) PlayerGames(args *PlayerGamesArgs, reply *PlayerGamesReply) error {
	games, err := as.roomService.PlayerGames(session.User(args.Player))
	if err != nil {
		return err
	}
	reply.Games = games
	return nil
}
