package container

// Options holds process configuration for the server binary.
type Options struct {
	Port        int    `default:"5000"           help:"Port to listen on"                                          short:"p"`
	RedisAddr   string `default:"localhost:6379" help:"Redis server address"                                       short:"r"`
	PostgresDSN string `default:""               help:"Postgres DSN for the click archive (in-memory when empty)"`
	LogFormat   string `default:"console"        help:"Log format: console or json"`
}
