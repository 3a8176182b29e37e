package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Registered driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Endpoint describes a networked store.
type Endpoint struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	ConnectTimeout time.Duration
}

// MySQLDSN formats an endpoint for go-sql-driver/mysql.
func MySQLDSN(e Endpoint) string {
	cfg := mysql.NewConfig()
	cfg.User = e.User
	cfg.Passwd = e.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
	cfg.DBName = e.Name
	cfg.ParseTime = true
	cfg.Timeout = e.ConnectTimeout
	cfg.ReadTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// PostgresDSN formats an endpoint as a lib/pq connection URL.
func PostgresDSN(e Endpoint) string {
	q := url.Values{}
	q.Set("sslmode", "disable")
	if e.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(e.ConnectTimeout.Seconds())))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.User, e.Password),
		Host:     net.JoinHostPort(e.Host, strconv.Itoa(e.Port)),
		Path:     "/" + e.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// DataSource returns the DSN for driver. SQLite uses path as-is.
func DataSource(driver string, e Endpoint, path string) (string, error) {
	switch driver {
	case DriverMySQL:
		return MySQLDSN(e), nil
	case DriverPostgres:
		return PostgresDSN(e), nil
	case DriverSQLite:
		if path == "" {
			return "", fmt.Errorf("sqlite path cannot be empty")
		}
		return path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
