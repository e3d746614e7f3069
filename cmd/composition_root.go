package cmd

import (
	"time"

	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	codeGenerator := services.NewTrackingCodeGenerator(time.Now, uuid.New)
	return commands.NewCreateShipmentCommandHandler(f, codeGenerator, time.Now)
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddTrackingEventCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateAddLocationEventCommandHandler() commands.AddLocationEventCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLocationEventCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingCodeQueryHandler() queries.GetShipmentByTrackingCodeQueryHandler {
	return queries.NewGetShipmentByTrackingCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllBranchesQueryHandler() queries.GetAllBranchesQueryHandler {
	return queries.NewGetAllBranchesQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
