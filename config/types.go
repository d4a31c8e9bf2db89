package config

type config struct {
	Server     server     `yaml:"server" mapstructure:"server"`
	Database   database   `yaml:"database" mapstructure:"database"`
	Mysql      mysql      `yaml:"mysql" mapstructure:"mysql"`
	Sqlite     sqlite     `yaml:"sqlite" mapstructure:"sqlite"`
	Redis      redis      `yaml:"redis" mapstructure:"redis"`
	Minio      minio      `yaml:"minio" mapstructure:"minio"`
	RabbitMq   rabbitmq   `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Jaeger     jaeger     `yaml:"jaeger" mapstructure:"jaeger"`
	Jwt        jwt        `yaml:"jwt" mapstructure:"jwt"`
	Sentinel   sentinel   `yaml:"sentinel" mapstructure:"sentinel"`
	Reconciler reconciler `yaml:"reconciler" mapstructure:"reconciler"`
	Snowflake  snowflake  `yaml:"snowflake" mapstructure:"snowflake"`
}

type server struct {
	Addr           string   `yaml:"addr"`
	MaxBodySize    int      `yaml:"max_body_size" mapstructure:"max_body_size"`
	AllowOrigins   []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	UploadTempDir  string   `yaml:"upload_temp_dir" mapstructure:"upload_temp_dir"`
	ShutdownSecond int      `yaml:"shutdown_second" mapstructure:"shutdown_second"`
	PprofAddr      string   `yaml:"pprof_addr" mapstructure:"pprof_addr"`
}

// Driver is either "mysql" or "sqlite".
type database struct {
	Driver string `yaml:"driver"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type sqlite struct {
	Path string `yaml:"path"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey  string `yaml:"secret_key" mapstructure:"secret_key"`
	UseSSL     bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	Region     string `yaml:"region"`
	PublicBase string `yaml:"public_base" mapstructure:"public_base"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Exchange string `yaml:"exchange"`
}

type jaeger struct {
	Enabled   bool   `yaml:"enabled"`
	AgentAddr string `yaml:"agent_addr" mapstructure:"agent_addr"`
}

type jwt struct {
	Secret  string `yaml:"secret"`
	Realm   string `yaml:"realm"`
	Timeout string `yaml:"timeout"`
}

type sentinel struct {
	Enabled   bool    `yaml:"enabled"`
	ToggleQPS float64 `yaml:"toggle_qps" mapstructure:"toggle_qps"`
}

type reconciler struct {
	Interval    string `yaml:"interval"`
	MaxAttempts int    `yaml:"max_attempts" mapstructure:"max_attempts"`
	BatchSize   int    `yaml:"batch_size" mapstructure:"batch_size"`
}

type snowflake struct {
	Node int64 `yaml:"node"`
}
