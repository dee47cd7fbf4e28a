//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"saba-booking/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// FakeSlip is a rate token the fake reservation API turns into a session line.
type FakeSlip struct {
	ItemID catalog.ItemID
	Name   string
	Date   string
	Total  string
}

type fakeLine struct {
	slip  string
	price FakeSlip
}

// FakeReservationAPI is an in-memory stand-in for the reservation API that
// keeps sessions and bookings between calls.
type FakeReservationAPI struct {
	mu       sync.Mutex
	slips    map[string]FakeSlip
	sessions map[string][]fakeLine
	bookings map[string]string
	seq      int
	Server   *httptest.Server
}

func NewFakeReservationAPI(t *testing.T, slips map[string]FakeSlip) *FakeReservationAPI {
	t.Helper()

	f := &FakeReservationAPI{
		slips:    slips,
		sessions: map[string][]fakeLine{},
		bookings: map[string]string{},
	}
	r := gin.New()
	r.GET("/booking/session", f.getSession)
	r.POST("/booking/session", f.postSession)
	r.POST("/booking/session/clear", f.clearSession)
	r.GET("/booking/form", f.bookingForm)
	r.POST("/booking/create", f.createBooking)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// BookedSession returns the session a booking was created from.
func (f *FakeReservationAPI) BookedSession(bookingID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[bookingID]
}

func (f *FakeReservationAPI) getSession(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := c.Query("session_id")
	lines, ok := f.sessions[id]
	if !ok {
		c.JSON(http.StatusOK, gin.H{"booking": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, f.sessionBody(id, lines))
}

func (f *FakeReservationAPI) postSession(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := c.PostForm("session_id")
	if id == "" {
		f.seq++
		id = fmt.Sprintf("sess-%d", f.seq)
		f.sessions[id] = nil
	}
	lines, ok := f.sessions[id]
	if !ok {
		c.JSON(http.StatusOK, gin.H{"booking": gin.H{}})
		return
	}

	for _, slip := range c.PostFormArray("slip[]") {
		price, ok := f.slips[slip]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown slip " + slip})
			return
		}
		lines = append(lines, fakeLine{slip: slip, price: price})
	}
	for key, qty := range c.PostFormMap("alter") {
		if qty != "0" {
			continue
		}
		kept := lines[:0]
		for _, l := range lines {
			if l.slip != key {
				kept = append(kept, l)
			}
		}
		lines = kept
	}
	f.sessions[id] = lines
	c.JSON(http.StatusOK, f.sessionBody(id, lines))
}

func (f *FakeReservationAPI) clearSession(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id := c.PostForm("session_id"); id != "" {
		f.sessions[id] = nil
	}
	c.JSON(http.StatusOK, gin.H{"request": gin.H{"status": "OK"}})
}

func (f *FakeReservationAPI) bookingForm(c *gin.Context) {
	field := func(label, typ string, pos int) gin.H {
		return gin.H{"define": gin.H{
			"required": 1, "position": pos, "archived": 0,
			"layout": gin.H{"lbl": label, "type": typ, "customer": gin.H{"form": 1, "required": 1}},
		}}
	}
	c.JSON(http.StatusOK, gin.H{
		"booking_form_ui": gin.H{
			"customer_name":  field("Name", "text", 1),
			"customer_email": field("Email", "email", 2),
		},
	})
}

func (f *FakeReservationAPI) createBooking(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := c.PostForm("session_id")
	if len(f.sessions[id]) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	f.seq++
	bookingID := fmt.Sprintf("SABA-%04d", f.seq)
	f.bookings[bookingID] = id
	delete(f.sessions, id)
	c.JSON(http.StatusOK, gin.H{"booking": gin.H{
		"booking_id":  bookingID,
		"invoice_url": "https://pay.example.test/" + strings.ToLower(bookingID),
		"status":      "PEND",
	}})
}

func (f *FakeReservationAPI) sessionBody(id string, lines []fakeLine) gin.H {
	items := gin.H{}
	var total float64
	for i, l := range lines {
		var amount float64
		_, _ = fmt.Sscanf(strings.TrimPrefix(l.price.Total, "$"), "%f", &amount)
		total += amount
		items[fmt.Sprint(i+1)] = gin.H{
			"item_id":   int(l.price.ItemID),
			"name":      l.price.Name,
			"slip":      l.slip,
			"available": 10,
			"rate":      gin.H{"total": l.price.Total},
			"date":      gin.H{"summary": l.price.Date, "start_date": l.price.Date, "end_date": l.price.Date},
		}
	}
	return gin.H{"booking": gin.H{"session": gin.H{
		"id":    id,
		"total": fmt.Sprintf("$%.2f", total),
		"item":  items,
	}}}
}
