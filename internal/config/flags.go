package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver name ("sqlite3" or "pgx")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-session-timeout session inactivity timeout (e.g., "1h")
//	-max-login-attempts failed logins before lockout
//	-lockout-duration account lockout duration (e.g., "15m")
//	-default-password password for provisioned and repaired accounts
//	-audit-capacity in-memory audit log capacity
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sweep-interval session sweeper interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionTimeout time.Duration
	var maxLoginAttempts int
	var lockoutDuration time.Duration
	var defaultPassword string
	var auditCapacity int
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Session inactivity timeout (e.g., 1h)")
	flag.IntVar(&maxLoginAttempts, "max-login-attempts", 0, "Failed logins before lockout")
	flag.DurationVar(&lockoutDuration, "lockout-duration", 0, "Account lockout duration (e.g., 15m)")
	flag.StringVar(&defaultPassword, "default-password", "", "Password for provisioned and repaired accounts")
	flag.IntVar(&auditCapacity, "audit-capacity", 0, "In-memory audit log capacity")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Session sweeper interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			SessionTimeout:   sessionTimeout,
			MaxLoginAttempts: maxLoginAttempts,
			LockoutDuration:  lockoutDuration,
			DefaultPassword:  defaultPassword,
			AuditCapacity:    auditCapacity,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the value
// does not shadow lower-priority sources during the merge.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
