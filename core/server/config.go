package server

// Config holds configuration for the HTTP server and session tokens.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// TokenSecret is the HMAC secret used to sign session tokens.
	TokenSecret string `mapstructure:"token_secret" default:""`
	// TokenTTLHours is the session token lifetime in hours.
	TokenTTLHours int `mapstructure:"token_ttl_hours" default:"72"`
	// GameMaster is the username that receives the game-master flag
	// when its account is first provisioned.
	GameMaster string `mapstructure:"game_master" default:""`
}
