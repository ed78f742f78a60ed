package controller

import (
	"context"
	"encoding/json"
	"festival/app_error"
	"festival/metrics"
	"festival/scoring"
	"festival/service"
	"festival/utils"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const standingsWriteTimeout = 5 * time.Second

// StandingsController serves the standings and pushes fresh group standings to every
// websocket subscriber whenever results change.
type StandingsController struct {
	standingsService *service.StandingsService
	logger           *zap.Logger
	mu               sync.Mutex
	connections      map[*websocket.Conn]bool
}

func NewStandingsController(deps *Dependencies) *StandingsController {
	return &StandingsController{
		standingsService: service.NewStandingsService(deps.DB),
		logger:           deps.Logger,
		connections:      make(map[*websocket.Conn]bool),
	}
}

func setupStandingsController(e *StandingsController) []RouteInfo {
	return []RouteInfo{
		{Method: "GET", Path: "/points", HandlerFunc: e.getPointsHandler()},
		{Method: "GET", Path: "/points/ws", HandlerFunc: e.WebSocketHandler},
		{Method: "GET", Path: "/champions", HandlerFunc: e.getChampionsHandler()},
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// standings are public, any origin may follow them
		return true
	},
}

// @id GetPoints
// @Description Fetches the group standings, every group is listed even without points
// @Tags standings
// @Produce json
// @Success 200 {array} GroupStanding
// @Router /points [get]
func (e *StandingsController) getPointsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		standings, err := e.standingsService.GetGroupStandings(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(standings, toGroupStandingResponse))
	}
}

// @id GetChampions
// @Description Fetches the individual champions, contestants without points are left out
// @Tags standings
// @Produce json
// @Success 200 {array} ChampionStanding
// @Router /champions [get]
func (e *StandingsController) getChampionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		champions, err := e.standingsService.GetChampions(c.Request.Context())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(champions, toChampionStandingResponse))
	}
}

// @id StandingsWebSocket
// @Description Websocket for group standings. Sends the current standings on connect and again after every result submission.
// @Tags standings
// @Success 200 {array} GroupStanding
// @Router /points/ws [get]
func (e *StandingsController) WebSocketHandler(c *gin.Context) {
	serialized, err := e.serializedStandings(c.Request.Context())
	if err != nil {
		app_error.Respond(c, err)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	e.mu.Lock()
	err = writeWithDeadline(conn, serialized)
	if err == nil {
		e.connections[conn] = true
		metrics.StandingsSubscribersGauge.Set(float64(len(e.connections)))
	}
	e.mu.Unlock()
	if err != nil {
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			e.mu.Lock()
			delete(e.connections, conn)
			metrics.StandingsSubscribersGauge.Set(float64(len(e.connections)))
			e.mu.Unlock()
			return
		}
	}
}

// StandingsChanged recomputes the group standings once and sends them to all subscribers.
func (e *StandingsController) StandingsChanged(ctx context.Context) {
	e.mu.Lock()
	subscribers := len(e.connections)
	e.mu.Unlock()
	if subscribers == 0 {
		return
	}
	serialized, err := e.serializedStandings(ctx)
	if err != nil {
		e.logger.Warn("failed to compute standings for subscribers", zap.Error(err))
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for conn := range e.connections {
		if err := writeWithDeadline(conn, serialized); err != nil {
			conn.Close()
			delete(e.connections, conn)
		}
	}
	metrics.StandingsSubscribersGauge.Set(float64(len(e.connections)))
}

func (e *StandingsController) serializedStandings(ctx context.Context) ([]byte, error) {
	standings, err := e.standingsService.GetGroupStandings(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(utils.Map(standings, toGroupStandingResponse))
}

func writeWithDeadline(conn *websocket.Conn, data []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(standingsWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

type GroupStanding struct {
	Rank        int    `json:"rank" binding:"required"`
	GroupId     int    `json:"group_id" binding:"required"`
	GroupName   string `json:"group_name" binding:"required"`
	TotalPoints int    `json:"total_points" binding:"required"`
}

func toGroupStandingResponse(standing *scoring.GroupStanding) *GroupStanding {
	return &GroupStanding{
		Rank:        standing.Rank,
		GroupId:     standing.GroupId,
		GroupName:   standing.GroupName,
		TotalPoints: standing.TotalPoints,
	}
}

type ChampionStanding struct {
	Rank               int    `json:"rank" binding:"required"`
	ContestantId       int    `json:"contestant_id" binding:"required"`
	FullName           string `json:"full_name" binding:"required"`
	GroupName          string `json:"group_name"`
	TotalPoints        int    `json:"total_points" binding:"required"`
	EventsParticipated int    `json:"events_participated" binding:"required"`
}

func toChampionStandingResponse(standing *scoring.ChampionStanding) *ChampionStanding {
	return &ChampionStanding{
		Rank:               standing.Rank,
		ContestantId:       standing.ContestantId,
		FullName:           standing.FullName,
		GroupName:          standing.GroupName,
		TotalPoints:        standing.TotalPoints,
		EventsParticipated: standing.EventsParticipated,
	}
}
