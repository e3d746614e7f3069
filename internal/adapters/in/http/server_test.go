package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *httpin.Server {
	return httpin.NewServer(
		commands.CreateShipmentCommandHandler{},
		commands.AddTrackingEventCommandHandler{},
		commands.AddLocationEventCommandHandler{},
		commands.CancelShipmentCommandHandler{},
		queries.GetShipmentByTrackingCodeQueryHandler{},
		queries.ListShipmentsQueryHandler{},
		queries.GetAllBranchesQueryHandler{},
	)
}

// A path code that does not match the tracking code format can never resolve
// to a shipment, so every code-addressed endpoint reports it as not found.
func TestServer_MalformedTrackingCodeIsNotFound(t *testing.T) {
	server := testServer()
	e := echo.New()

	endpoints := map[string]func(echo.Context, string) error{
		"detail":   server.GetShipmentByTrackingCode,
		"events":   server.AddTrackingEvent,
		"location": server.AddLocationEvent,
		"cancel":   server.CancelShipment,
	}

	for name, endpoint := range endpoints {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, endpoint(ctx, "not-a-code"))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "Shipment not found")
		})
	}
}
