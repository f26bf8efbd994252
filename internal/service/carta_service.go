package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cartaCacheKey = "carta:v1"
	cartaCacheTTL = 5 * time.Minute
)

// CartaService serves the public menu: every active receta with its current
// price. Reads go through Redis; any receta mutation invalidates the key.
type CartaService interface {
	GetCarta(ctx context.Context) ([]dto.CartaItem, error)
	Invalidate(ctx context.Context)
}

type cartaService struct {
	recetas repository.RecetaRepository
	rdb     *redis.Client
}

func NewCartaService(recetas repository.RecetaRepository, rdb *redis.Client) CartaService {
	return &cartaService{recetas: recetas, rdb: rdb}
}

func (s *cartaService) GetCarta(ctx context.Context) ([]dto.CartaItem, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cartaCacheKey).Result(); err == nil {
			var items []dto.CartaItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
			// Entrada corrupta: se descarta y se reconstruye.
			s.Invalidate(ctx)
		}
	}

	recetas, err := s.recetas.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartaItem, 0, len(recetas))
	for _, r := range recetas {
		item := dto.CartaItem{
			ID:          r.ID.String(),
			Nombre:      r.NombreReceta,
			Descripcion: r.Descripcion,
			Precio:      r.PrecioVentaActual,
			URLImagen:   r.URLImagen,
		}
		if r.Categoria != nil {
			nombre := r.Categoria.Nombre
			item.Categoria = &nombre
		}
		items = append(items, item)
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.rdb.Set(ctx, cartaCacheKey, raw, cartaCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear la carta")
			}
		}
	}
	return items, nil
}

func (s *cartaService) Invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cartaCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la cache de la carta")
	}
}
