package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-session-duration session cookie lifetime (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-gateway mail gateway URL for OTP delivery
//	-mail-sender sender address for OTP mail
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var sessionDuration time.Duration
	var requestTimeout time.Duration
	var mailGatewayURL string
	var mailSender string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session cookie lifetime (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mailGatewayURL, "mail-gateway", "", "Mail gateway URL for OTP delivery")
	flag.StringVar(&mailSender, "mail-sender", "", "Sender address for OTP mail")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			SessionDuration: sessionDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			GatewayURL: mailGatewayURL,
			Sender:     mailSender,
		},
		JSONFilePath: jsonConfigPath,
	}
}
