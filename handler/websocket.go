package handler

import (
	"context"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	boardConnections = make(map[int]map[*websocket.Conn]bool)
	boardMutex       sync.Mutex
)

func registerBoardConn(number int, c *websocket.Conn) {
	boardMutex.Lock()
	defer boardMutex.Unlock()
	if boardConnections[number] == nil {
		boardConnections[number] = make(map[*websocket.Conn]bool)
	}
	boardConnections[number][c] = true
}

func unregisterBoardConn(number int, c *websocket.Conn) {
	boardMutex.Lock()
	defer boardMutex.Unlock()
	delete(boardConnections[number], c)
	if len(boardConnections[number]) == 0 {
		delete(boardConnections, number)
	}
}

// boardConnSnapshot copies the room's connections out under the lock, so
// writers iterate a private slice while connects and disconnects keep
// mutating the map.
func boardConnSnapshot(number int) []*websocket.Conn {
	boardMutex.Lock()
	defer boardMutex.Unlock()
	conns := make([]*websocket.Conn, 0, len(boardConnections[number]))
	for conn := range boardConnections[number] {
		conns = append(conns, conn)
	}
	return conns
}

// BoardWebsocket streams schedule-board updates for one room.
func BoardWebsocket(c *websocket.Conn) {
	numberStr := c.Params("roomId")
	number, err := strconv.Atoi(numberStr)
	if err != nil {
		log.Printf("Invalid roomId: %s", numberStr)
		c.Close()
		return
	}

	registerBoardConn(number, c)
	log.Printf("New WS connection for room %d", number)

	defer func() {
		unregisterBoardConn(number, c)
		c.Close()
		log.Printf("WS connection closed for room %d", number)
	}()

	// Push the current board right away so a fresh client is not blank
	// until the next schedule change.
	BroadcastBoard(number)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastBoard pushes the room's full board to every listening client.
func BroadcastBoard(number int) {
	conns := boardConnSnapshot(number)
	if len(conns) == 0 {
		return
	}

	ctx := context.Background()
	room, err := repo().FindById(ctx, number)
	if err != nil {
		log.Printf("Error loading room %d for broadcast: %v", number, err)
		return
	}
	rec, err := repo().RecordForNumber(ctx, number)
	if err != nil {
		log.Printf("Error loading room record %d for broadcast: %v", number, err)
		return
	}

	board := buildBoard(room, rec.Name)
	for _, conn := range conns {
		if err := conn.WriteJSON(board); err != nil {
			log.Printf("Error broadcasting board for room %d: %v", number, err)
		}
	}
}
