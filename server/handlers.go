// server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/wfunc/coloretto/coloretto"
	"github.com/wfunc/coloretto/logger"
	"github.com/wfunc/coloretto/persistence"
	"github.com/wfunc/coloretto/room"
	"github.com/wfunc/coloretto/session"
)

func (s *GameServer) handleNew(c *gin.Context) {
	user, ok := session.Require(c)
	if !ok {
		return
	}

	r, err := s.service.Create(c.Request.Context(), user)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.mon.IncRoomsCreated()
	c.JSON(http.StatusOK, r.Id)
}

func (s *GameServer) handleJoin(c *gin.Context) {
	user, ok := session.Require(c)
	if !ok {
		return
	}

	r, err := s.service.Join(c.Request.Context(), c.Param("room"), user)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *GameServer) handleLeave(c *gin.Context) {
	user, ok := session.Require(c)
	if !ok {
		return
	}

	r, err := s.service.Leave(c.Request.Context(), c.Param("room"), user)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *GameServer) handleStart(c *gin.Context) {
	user, ok := session.Require(c)
	if !ok {
		return
	}

	r, err := s.service.Start(c.Request.Context(), c.Param("room"), user)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.mon.IncGamesStarted()
	c.JSON(http.StatusOK, r)
}

func (s *GameServer) handleStatus(c *gin.Context) {
	r, err := s.service.Status(c.Request.Context(), c.Param("room"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (s *GameServer) handlePerform(c *gin.Context) {
	user, ok := session.Require(c)
	if !ok {
		return
	}

	action, err := parsePathAction(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	began := time.Now()
	r, err := s.service.Perform(c.Request.Context(), c.Param("room"), user, action)
	s.mon.ObserveActionLatency(time.Since(began))
	if err != nil {
		s.mon.IncActionErrors()
		s.respondError(c, err)
		return
	}
	s.mon.IncActions()
	c.JSON(http.StatusOK, r)
}

// handleWatch upgrades to a websocket and streams the room document to the
// client after every mutation, starting with the current state.
func (s *GameServer) handleWatch(c *gin.Context) {
	code := c.Param("room")
	r, err := s.service.Status(c.Request.Context(), code)
	if err != nil {
		s.respondError(c, err)
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade watch connection: %v", err)
		return
	}

	snapshot, err := json.Marshal(r)
	if err == nil {
		conn.WriteMessage(websocket.TextMessage, snapshot)
	}

	s.hub.Watch(r.Id.String(), conn)
	logger.Log.Infof("Watcher connected to room %s from %s", r.Id, conn.RemoteAddr())

	// Reads only serve to detect the peer going away.
	go func() {
		defer func() {
			s.hub.Leave(r.Id.String(), conn)
			conn.Close()
			logger.Log.Infof("Watcher disconnected from room %s", r.Id)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// parsePathAction decodes the action path segment: "flip", "place-<i>" or
// "take-<i>" with a zero-based stack index.
func parsePathAction(s string) (coloretto.Action, error) {
	if s == "flip" {
		return coloretto.FlipAction(), nil
	}
	name, raw, found := strings.Cut(s, "-")
	if found {
		index, err := strconv.Atoi(raw)
		if err == nil {
			switch name {
			case "place":
				return coloretto.PlaceAction(index), nil
			case "take":
				return coloretto.TakeAction(index), nil
			}
		}
	}
	return coloretto.Action{}, errors.New("unknown action: " + s)
}

// respondError maps service errors onto HTTP statuses. Missing rooms are 404
// and rule violations 403; anything else is a storage or codec failure, 424.
func (s *GameServer) respondError(c *gin.Context, err error) {
	status := http.StatusFailedDependency
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		status = http.StatusNotFound
	case isGameError(err):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

var gameErrors = []error{
	room.ErrInvalid,
	room.ErrFull,
	room.ErrAlreadyJoined,
	room.ErrNotEnoughPlayers,
	room.ErrNotLeader,
	room.ErrAwaitTurn,
	room.ErrWrongState,
	coloretto.ErrPlayers,
	coloretto.ErrNoCard,
	coloretto.ErrFlipped,
	coloretto.ErrNoStack,
	coloretto.ErrEmptyStack,
	coloretto.ErrFullStack,
	coloretto.ErrGameOver,
}

func isGameError(err error) bool {
	for _, sentinel := range gameErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
