package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/portaria-api/internal/application/visit"
	"github.com/jhoicas/portaria-api/pkg/config"
)

// NewClient crea el cliente Redis a partir de la configuración. Si Addr está
// vacío o el servidor no responde al ping, devuelve nil y los callers deben
// degradar (sin caché, la API sigue sirviendo desde la DB).
func NewClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, caché de visitas activas deshabilitado")
		return nil
	}
	return client
}

var _ visit.ActiveVisitsCache = (*ActiveVisitsCache)(nil)

// ActiveVisitsCache caché del listado de visitas activas por empresa.
// Los errores de Redis se registran y se tragan: un fallo de caché nunca
// debe tumbar la operación.
type ActiveVisitsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewActiveVisitsCache construye el caché con el TTL configurado.
func NewActiveVisitsCache(client *redis.Client, ttl time.Duration) *ActiveVisitsCache {
	return &ActiveVisitsCache{client: client, ttl: ttl}
}

func key(companyID string) string {
	return "active_visits:" + companyID
}

// Get devuelve el payload cacheado y true si hubo hit.
func (c *ActiveVisitsCache) Get(ctx context.Context, companyID string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key(companyID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("Error leyendo caché de visitas activas")
		}
		return nil, false
	}
	return data, true
}

// Set guarda el payload con el TTL del caché.
func (c *ActiveVisitsCache) Set(ctx context.Context, companyID string, payload []byte) {
	if err := c.client.Set(ctx, key(companyID), payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Error escribiendo caché de visitas activas")
	}
}

// Invalidate borra la entrada de la empresa. Se llama tras crear o cerrar
// una visita.
func (c *ActiveVisitsCache) Invalidate(ctx context.Context, companyID string) {
	if err := c.client.Del(ctx, key(companyID)).Err(); err != nil {
		log.Warn().Err(err).Msg("Error invalidando caché de visitas activas")
	}
}
