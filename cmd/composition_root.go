package cmd

import (
	"log/slog"

	"shopfloor/internal/adapters/out/notify"
	"shopfloor/internal/adapters/out/postgres"
	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
	}
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDetachOrderLocationCommandHandler() commands.DetachOrderLocationCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDetachOrderLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateEnqueueAtLocationCommandHandler() commands.EnqueueAtLocationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnqueueAtLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishWorkCommandHandler() commands.FinishWorkCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishWorkCommandHandler(f)
}

func (c *CompositionRoot) CreatePauseWorkCommandHandler() commands.PauseWorkCommandHandler {
	var f commands.WorkUoWFactory = FuncWorkUoWFactory(func() commands.WorkUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPauseWorkCommandHandler(f)
}

func (c *CompositionRoot) CreateRecomputeQueuesCommandHandler() commands.RecomputeQueuesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeQueuesCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordShipmentCommandHandler() commands.RecordShipmentCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshLocationQueueCommandHandler() commands.RefreshLocationQueueCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshLocationQueueCommandHandler(f)
}

func (c *CompositionRoot) CreateReorderLocationQueueCommandHandler() commands.ReorderLocationQueueCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderLocationQueueCommandHandler(f)
}

func (c *CompositionRoot) CreateSetGlobalPositionCommandHandler() commands.SetGlobalPositionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetGlobalPositionCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRushCommandHandler() commands.SetRushCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRushCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateStartWorkCommandHandler() commands.StartWorkCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartWorkCommandHandler(f)
}

func (c *CompositionRoot) CreateUnsetRushCommandHandler() commands.UnsetRushCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnsetRushCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateCompletedQuantityCommandHandler() commands.UpdateCompletedQuantityCommandHandler {
	var f commands.WorkUoWFactory = FuncWorkUoWFactory(func() commands.WorkUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCompletedQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetGlobalQueueQueryHandler() queries.GetGlobalQueueQueryHandler {
	return queries.NewGetGlobalQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLocationQueueQueryHandler() queries.GetLocationQueueQueryHandler {
	return queries.NewGetLocationQueueQueryHandler(c.gormDB)
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQueueUoWFactory func() commands.QueueUoW

func (f FuncQueueUoWFactory) Create() commands.QueueUoW {
	return f()
}

type FuncWorkUoWFactory func() commands.WorkUoW

func (f FuncWorkUoWFactory) Create() commands.WorkUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
