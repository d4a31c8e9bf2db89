package main

import (
	"context"
	"time"

	interaction "VidTube.com/cmd/api/handlers/interaction"
	relation "VidTube.com/cmd/api/handlers/relation"
	system "VidTube.com/cmd/api/handlers/system"
	video "VidTube.com/cmd/api/handlers/video"
	interactiondb "VidTube.com/cmd/interaction/dal/db"
	interactionservice "VidTube.com/cmd/interaction/service"
	relationdb "VidTube.com/cmd/relation/dal/db"
	relationservice "VidTube.com/cmd/relation/service"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/config"
	"VidTube.com/config/jaeger"
	"VidTube.com/config/pprof"
	"VidTube.com/pkg/auth"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/middleware"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/response"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
	"github.com/hertz-contrib/jwt"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// components are the collaborators every handler package is initialised with.
type components struct {
	Store     oss.MediaStore
	Prober    utils.DurationProber
	Publisher mq.Publisher
	Locker    lock.Locker
	Jwt       *jwt.HertzJWTMiddleware
	TempDir   string
}

func initDB(conn *gorm.DB) {
	userdb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	relationdb.Init(conn)
}

func openDB() (*gorm.DB, error) {
	driver := config.ConfigInfo.Database.Driver
	dsn := utils.GetMysqlDsn()
	if driver == database.DriverSqlite {
		dsn = config.ConfigInfo.Sqlite.Path
	}
	return database.Open(driver, dsn)
}

// initRedis returns nil when Redis is not configured or not reachable, the
// toggles then fall back to an in-process lock.
func initRedis() *redis.Client {
	conf := config.ConfigInfo.Redis
	if conf.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		hlog.Warnf("redis %s unreachable, using in-process locks: %v", conf.Addr, err)
		_ = client.Close()
		return nil
	}
	hlog.Infof("Connect Redis Success: %s", conf.Addr)
	return client
}

func initStore() oss.MediaStore {
	store, err := oss.InitMinio()
	if err != nil {
		hlog.Warnf("minio unavailable, media is kept in memory only: %v", err)
		return oss.NewMemoryStore()
	}
	return store
}

func initPublisher() mq.Publisher {
	url := config.RabbitMqURL()
	if url == "" {
		return mq.NopPublisher{}
	}
	producer, err := mq.NewProducer(url, config.ConfigInfo.RabbitMq.Exchange)
	if err != nil {
		hlog.Warnf("rabbitmq unavailable, events are dropped: %v", err)
		return mq.NopPublisher{}
	}
	return producer
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// newServer wires the handlers and middlewares onto a fresh Hertz instance.
func newServer(comps components, opts ...hertzconfig.Option) *server.Hertz {
	video.Init(videoservice.Deps{
		Store:     comps.Store,
		Prober:    comps.Prober,
		Publisher: comps.Publisher,
	}, comps.TempDir)
	interaction.Init(interactionservice.Deps{
		Locker:    comps.Locker,
		Publisher: comps.Publisher,
	})
	relation.Init(relationservice.Deps{
		Locker:    comps.Locker,
		Publisher: comps.Publisher,
	})

	r := server.New(opts...)

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			response.SendError(ctx, c, errno.ServiceErr)
		})))

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,           // 是否允许发送凭证
		MaxAge:           12 * time.Hour, // 预检请求的缓存时间
	}))

	r.Use(middleware.ServerTracing())

	register(r, comps.Jwt)
	return r
}

func main() {
	config.Init()
	conf := config.ConfigInfo

	if err := utils.InitSnowflake(conf.Snowflake.Node); err != nil {
		hlog.Fatalf("init snowflake: %v", err)
	}

	pprof.Load(conf.Server.PprofAddr)
	tracerCloser := jaeger.InitTracer(constants.ServiceName, conf.Jaeger.AgentAddr, conf.Jaeger.Enabled)

	conn, err := openDB()
	if err != nil {
		hlog.Fatalf("init database: %v", err)
	}
	initDB(conn)

	if err = auth.Init(auth.Options{
		Secret:  conf.Jwt.Secret,
		Realm:   conf.Jwt.Realm,
		Timeout: parseDuration(conf.Jwt.Timeout, 24*time.Hour),
	}); err != nil {
		hlog.Fatalf("init jwt: %v", err)
	}

	var locker lock.Locker = lock.NewLocalLocker()
	redisClient := initRedis()
	if redisClient != nil {
		locker = lock.NewRedisLocker(redisClient, constants.LockExpirySecond*time.Second)
	}

	store := initStore()
	publisher := initPublisher()

	if conf.Sentinel.Enabled {
		if err = middleware.InitSentinel(conf.Sentinel.ToggleQPS); err != nil {
			hlog.Warnf("sentinel disabled: %v", err)
		}
	}

	optional := map[string]system.Check{}
	if redisClient != nil {
		optional["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	if minioStore, ok := store.(*oss.MinioStore); ok {
		optional["minio"] = minioStore.Ping
	}
	system.Init(map[string]system.Check{"database": userdb.Ping}, optional)

	h := newServer(components{
		Store:     store,
		Prober:    utils.FFProbe{},
		Publisher: publisher,
		Locker:    locker,
		Jwt:       auth.JwtMiddleware,
		TempDir:   conf.Server.UploadTempDir,
	},
		server.WithHostPorts(conf.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(conf.Server.MaxBodySize),
		server.WithExitWaitTime(time.Duration(conf.Server.ShutdownSecond)*time.Second),
	)

	reconcileCtx, stopReconciler := context.WithCancel(context.Background())
	reconciler := videoservice.NewReconciler(store, conf.Reconciler.MaxAttempts, conf.Reconciler.BatchSize)
	go reconciler.Run(reconcileCtx, parseDuration(conf.Reconciler.Interval, 5*time.Minute))

	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		stopReconciler()
		if err := publisher.Close(); err != nil {
			hlog.Warnf("close publisher: %v", err)
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
		_ = tracerCloser.Close()
	})

	h.Spin()
}
