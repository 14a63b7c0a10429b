package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type E2ETestSuite struct {
	suite.Suite

	kafkaWriter *kafka.Writer
	httpClient  *http.Client
	appHost     string
	appPort     string

	adminID uuid.UUID
	userID  uuid.UUID
}

type paymentEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	UserID        uuid.UUID `json:"user_id"`
	PaymentStatus string    `json:"payment_status"`
	PaymentRef    string    `json:"payment_ref"`
}

func (s *E2ETestSuite) SetupSuite() {
	kafkaBrokers := getEnvOrDefault("KAFKA_BROKERS", "localhost:9092")
	kafkaTopic := getEnvOrDefault("KAFKA_TOPIC", "payment-events")
	s.appHost = getEnvOrDefault("APP_HOST", "localhost")
	s.appPort = getEnvOrDefault("APP_PORT", "8080")

	s.kafkaWriter = &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	s.httpClient = &http.Client{
		Timeout: 10 * time.Second,
	}

	s.adminID = uuid.New()
	s.userID = uuid.New()

	s.waitForApp()
}

func (s *E2ETestSuite) waitForApp() {
	const maxRetries = 30
	const retryDelay = 2 * time.Second
	hostport := net.JoinHostPort(s.appHost, s.appPort)
	healthURL := fmt.Sprintf(
		"http://%s/health",
		hostport,
	)

	for i := range maxRetries {
		req, err := http.NewRequestWithContext(context.Background(), "GET", healthURL, nil)
		if err != nil {
			s.T().Logf("Failed to create health check request: %v", err)
			time.Sleep(retryDelay)
			continue
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.T().Logf("Health check failed (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			s.T().Log("App is healthy")
			return
		} else {
			s.T().Logf("App health check status %d (attempt %d/%d)", resp.StatusCode, i+1, maxRetries)
		}
		time.Sleep(retryDelay)
	}
	s.T().Fatalf("App did not become healthy after %d attempts", maxRetries)
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.kafkaWriter != nil {
		s.kafkaWriter.Close()
	}
}

func (s *E2ETestSuite) apiURL(path string) string {
	hostport := net.JoinHostPort(s.appHost, s.appPort)
	return fmt.Sprintf("http://%s/api/v1%s", hostport, path)
}

// doJSON issues a request with the gateway identity headers set and decodes
// the JSON response into out when it is non-nil.
func (s *E2ETestSuite) doJSON(
	method, url string,
	callerID uuid.UUID,
	role string,
	payload, out any,
) int {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(s.T(), err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", callerID.String())
	req.Header.Set("X-User-Role", role)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	if out != nil && len(raw) > 0 {
		require.NoError(s.T(), json.Unmarshal(raw, out), "body: %s", string(raw))
	}
	return resp.StatusCode
}

func (s *E2ETestSuite) TestOrderSettlementFlow() {
	aEnd := s.createLocation()
	bEnd := s.createLocation()

	var route entity.Route
	status := s.doJSON(http.MethodPost, s.apiURL("/admin/routes"), s.adminID, "ADMIN",
		map[string]any{
			"name":     aEnd.City + " - " + bEnd.City,
			"a_end_id": aEnd.ID,
			"b_end_id": bEnd.ID,
		}, &route)
	require.Equal(s.T(), http.StatusCreated, status)

	var capacities []*entity.RouteCapacity
	status = s.doJSON(http.MethodPut, s.apiURL("/admin/routes/"+route.ID.String()+"/pricing"),
		s.adminID, "ADMIN",
		map[string]any{
			"capacities": []map[string]any{
				{"tier": "TEN_G", "price_per_unit": 150000, "available_units": 10},
			},
		}, &capacities)
	require.Equal(s.T(), http.StatusOK, status)
	require.Len(s.T(), capacities, 1)

	var order entity.Order
	status = s.doJSON(http.MethodPost, s.apiURL("/orders"), s.userID, "USER",
		map[string]any{
			"items": []map[string]any{
				{
					"route_id":          route.ID,
					"route_capacity_id": capacities[0].ID,
					"quantity":          2,
				},
			},
		}, &order)
	require.Equal(s.T(), http.StatusCreated, status)
	require.Equal(s.T(), entity.OrderStatusPending, order.Status)
	require.Equal(s.T(), int64(300000), order.TotalAmount)

	event := paymentEvent{
		OrderID:       order.ID,
		UserID:        s.userID,
		PaymentStatus: "COMPLETED",
		PaymentRef:    gofakeit.UUID(),
	}
	raw, err := json.Marshal(event)
	require.NoError(s.T(), err)

	err = s.kafkaWriter.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(order.ID.String()),
			Value: raw,
		},
	)
	require.NoError(s.T(), err, "Failed to write message to Kafka")

	settled := s.waitForOrderStatus(order.ID, entity.OrderStatusConfirmed)
	require.Equal(s.T(), entity.PaymentStatusCompleted, settled.PaymentStatus)

	capacities = nil
	status = s.doJSON(http.MethodGet,
		s.apiURL("/routes/"+route.ID.String()+"/capacities"),
		s.userID, "USER", nil, &capacities)
	require.Equal(s.T(), http.StatusOK, status)
	require.Len(s.T(), capacities, 1)
	require.Equal(s.T(), 8, capacities[0].AvailableUnits)
}

func (s *E2ETestSuite) TestStrangerCannotReadOrder() {
	aEnd := s.createLocation()
	bEnd := s.createLocation()

	var route entity.Route
	status := s.doJSON(http.MethodPost, s.apiURL("/admin/routes"), s.adminID, "ADMIN",
		map[string]any{
			"name":     aEnd.City + " - " + bEnd.City,
			"a_end_id": aEnd.ID,
			"b_end_id": bEnd.ID,
		}, &route)
	require.Equal(s.T(), http.StatusCreated, status)

	var capacities []*entity.RouteCapacity
	status = s.doJSON(http.MethodPut, s.apiURL("/admin/routes/"+route.ID.String()+"/pricing"),
		s.adminID, "ADMIN",
		map[string]any{
			"capacities": []map[string]any{
				{"tier": "HUNDRED_G", "price_per_unit": 900000, "available_units": 3},
			},
		}, &capacities)
	require.Equal(s.T(), http.StatusOK, status)

	var order entity.Order
	status = s.doJSON(http.MethodPost, s.apiURL("/orders"), s.userID, "USER",
		map[string]any{
			"items": []map[string]any{
				{
					"route_id":          route.ID,
					"route_capacity_id": capacities[0].ID,
					"quantity":          1,
				},
			},
		}, &order)
	require.Equal(s.T(), http.StatusCreated, status)

	status = s.doJSON(http.MethodGet, s.apiURL("/orders/"+order.ID.String()),
		uuid.New(), "USER", nil, nil)
	require.Equal(s.T(), http.StatusForbidden, status)

	status = s.doJSON(http.MethodGet, s.apiURL("/orders/"+order.ID.String()),
		s.adminID, "ADMIN", nil, nil)
	require.Equal(s.T(), http.StatusOK, status)
}

func (s *E2ETestSuite) createLocation() *entity.Location {
	var location entity.Location
	status := s.doJSON(http.MethodPost, s.apiURL("/admin/locations"), s.adminID, "ADMIN",
		map[string]any{
			"name":      gofakeit.City() + " " + gofakeit.LetterN(4),
			"type":      "POP",
			"region":    gofakeit.State(),
			"city":      gofakeit.City(),
			"latitude":  gofakeit.Latitude(),
			"longitude": gofakeit.Longitude(),
		}, &location)
	require.Equal(s.T(), http.StatusCreated, status)
	return &location
}

func (s *E2ETestSuite) waitForOrderStatus(
	orderID uuid.UUID,
	expected entity.OrderStatus,
) *entity.Order {
	const maxRetries = 15
	const retryDelay = 2 * time.Second

	var order entity.Order
	for i := range maxRetries {
		status := s.doJSON(http.MethodGet, s.apiURL("/orders/"+orderID.String()),
			s.userID, "USER", nil, &order)
		if status == http.StatusOK && order.Status == expected {
			return &order
		}
		s.T().Logf("Order %s status %s (attempt %d/%d)", orderID, order.Status, i+1, maxRetries)
		time.Sleep(retryDelay)
	}
	s.T().Fatalf("Order %s never reached status %s", orderID, expected)
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestE2E(t *testing.T) {
	if os.Getenv("E2E_TEST") == "" {
		t.Skip("Skipping E2E test; set E2E_TEST to run.")
	}
	suite.Run(t, new(E2ETestSuite))
}
