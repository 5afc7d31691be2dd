package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type MainTestSuite struct {
	suite.Suite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) config() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Host: "localhost", Port: 0},
		Log:       &config.Log{Level: 8, Format: "text"},
		RateLimit: &config.RateLimit{MaxRequests: 100, Window: time.Minute},
		CLI:       &config.CLI{BankName: "Test Bank"},
	}
}

func (s *MainTestSuite) TestRootRoute() {
	app, err := newServer(s.config())
	s.Require().NoError(err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestNotFoundRoute() {
	app, err := newServer(s.config())
	s.Require().NoError(err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/doesnotexist", nil))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MainTestSuite) TestPostTransactionRoute() {
	app, err := newServer(s.config())
	s.Require().NoError(err)

	body := `{"date":"20230626","account":"AC001","type":"D","amount":"10"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *MainTestSuite) TestMissingLogConfig() {
	_, err := newServer(&config.App{})
	s.Error(err)
}
