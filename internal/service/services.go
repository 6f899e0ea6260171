package service

import (
	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/internal/store"
)

type Services struct {
	MemoryService MemoryService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		MemoryService: NewMemoryService(storages, logger),
	}
}
