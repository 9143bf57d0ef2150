package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/minseop-dev/userboard/config"
	"github.com/minseop-dev/userboard/internal/domain/port"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	clock      port.Clock
	idGen      port.IDGenerator
	mailSender port.MailSender
)

func SetConfig(c *config.Config)      { cfg = c }
func GetConfig() *config.Config       { return cfg }
func SetLogger(l *logrus.Logger)      { logger = l }
func GetLogger() *logrus.Logger       { return logger }
func SetPGPool(p *pgxpool.Pool)       { pgPool = p }
func GetPGPool() *pgxpool.Pool        { return pgPool }
func SetRedis(r *redis.Client)        { redisClient = r }
func GetRedis() *redis.Client         { return redisClient }
func SetClock(c port.Clock)           { clock = c }
func GetClock() port.Clock            { return clock }
func SetIDGen(g port.IDGenerator)     { idGen = g }
func GetIDGen() port.IDGenerator      { return idGen }
func SetMailSender(m port.MailSender) { mailSender = m }
func GetMailSender() port.MailSender  { return mailSender }
