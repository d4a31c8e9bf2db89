package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func init() {
	setDefaults()
	load()
}

// Init reads config.yml (and .env, if present) into ConfigInfo. Keys can be
// overridden from the environment, e.g. MYSQL_ADDR for mysql.addr.
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("load .env: %v", err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	load()

	logrus.Infof("Config loaded - database driver: %s, MySQL: %s:%s@%s/%s",
		ConfigInfo.Database.Driver, ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("jwt.secret is empty, every request will be rejected")
	}
}

func setDefaults() {
	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("server.max_body_size", 512*1024*1024)
	viper.SetDefault("server.allow_origins", []string{"http://localhost:8870", "http://localhost:8888"})
	viper.SetDefault("server.upload_temp_dir", os.TempDir())
	viper.SetDefault("server.shutdown_second", 5)
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("sqlite.path", "vidtube.db")
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("rabbitmq.exchange", "vidtube.events")
	viper.SetDefault("jwt.realm", "vidtube")
	viper.SetDefault("jwt.timeout", "24h")
	viper.SetDefault("sentinel.toggle_qps", 200)
	viper.SetDefault("reconciler.interval", "5m")
	viper.SetDefault("reconciler.max_attempts", 10)
	viper.SetDefault("reconciler.batch_size", 100)
	viper.SetDefault("snowflake.node", 1)
}

// 手动从viper获取配置值，避免Unmarshal对嵌套slice的问题
func load() {
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.MaxBodySize = viper.GetInt("server.max_body_size")
	ConfigInfo.Server.AllowOrigins = viper.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.UploadTempDir = viper.GetString("server.upload_temp_dir")
	ConfigInfo.Server.ShutdownSecond = viper.GetInt("server.shutdown_second")
	ConfigInfo.Server.PprofAddr = viper.GetString("server.pprof_addr")

	ConfigInfo.Database.Driver = viper.GetString("database.driver")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Sqlite.Path = viper.GetString("sqlite.path")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.Region = viper.GetString("minio.region")
	ConfigInfo.Minio.PublicBase = viper.GetString("minio.public_base")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")
	ConfigInfo.RabbitMq.Exchange = viper.GetString("rabbitmq.exchange")

	ConfigInfo.Jaeger.Enabled = viper.GetBool("jaeger.enabled")
	ConfigInfo.Jaeger.AgentAddr = viper.GetString("jaeger.agent_addr")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Realm = viper.GetString("jwt.realm")
	ConfigInfo.Jwt.Timeout = viper.GetString("jwt.timeout")

	ConfigInfo.Sentinel.Enabled = viper.GetBool("sentinel.enabled")
	ConfigInfo.Sentinel.ToggleQPS = viper.GetFloat64("sentinel.toggle_qps")

	ConfigInfo.Reconciler.Interval = viper.GetString("reconciler.interval")
	ConfigInfo.Reconciler.MaxAttempts = viper.GetInt("reconciler.max_attempts")
	ConfigInfo.Reconciler.BatchSize = viper.GetInt("reconciler.batch_size")

	ConfigInfo.Snowflake.Node = viper.GetInt64("snowflake.node")
}

// RabbitMqURL builds the amqp URL, empty when rabbitmq.addr is unset.
func RabbitMqURL() string {
	if ConfigInfo.RabbitMq.Addr == "" {
		return ""
	}
	return "amqp://" + ConfigInfo.RabbitMq.Username + ":" + ConfigInfo.RabbitMq.Password + "@" + ConfigInfo.RabbitMq.Addr + "/"
}
