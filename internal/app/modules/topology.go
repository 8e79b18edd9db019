package modules

import (
	"context"

	"github.com/riverqueue/river"

	"aquafarm.io/steward/internal/api/handlers"
	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/jobs"
	"aquafarm.io/steward/internal/service"
	"aquafarm.io/steward/internal/store/entstore"
	"aquafarm.io/steward/internal/usecase"
)

// TopologyModule owns the farm topology delete pipeline: store, hierarchy
// resolver, affected-set aggregation, and the per-kind delete use cases.
type TopologyModule struct {
	infra      *Infrastructure
	dispatcher *domain.MutationDispatcher

	sites       *usecase.DeleteSiteUseCase
	departments *usecase.DeleteDepartmentUseCase
	systems     *usecase.DeleteSystemUseCase
	equipment   *usecase.DeleteEquipmentUseCase
}

// NewTopologyModule wires the delete pipeline against the Ent-backed store.
func NewTopologyModule(infra *Infrastructure) *TopologyModule {
	st := entstore.New(infra.EntClient)
	aggregator := service.NewAffectedAggregator(st, service.NewHierarchyResolver(st)).
		WithQueryPool(infra.Pools.Query)

	dispatcher := domain.NewMutationDispatcher()
	if infra.Config.Audit.Enabled && infra.AuditLogger != nil {
		dispatcher.Register(infra.AuditLogger.MutationObserver())
	}
	observer := dispatcher.Observer()

	return &TopologyModule{
		infra:       infra,
		dispatcher:  dispatcher,
		sites:       usecase.NewDeleteSiteUseCase(st, aggregator).WithObserver(observer),
		departments: usecase.NewDeleteDepartmentUseCase(st, aggregator).WithObserver(observer),
		systems:     usecase.NewDeleteSystemUseCase(st, aggregator).WithObserver(observer),
		equipment:   usecase.NewDeleteEquipmentUseCase(st, aggregator).WithObserver(observer),
	}
}

// Name implements Module.
func (m *TopologyModule) Name() string { return "topology" }

// ContributeServerDeps implements Module.
func (m *TopologyModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	deps.Sites = m.sites
	deps.Departments = m.departments
	deps.Systems = m.systems
	deps.Equipment = m.equipment
}

// RegisterWorkers implements Module.
func (m *TopologyModule) RegisterWorkers(workers *river.Workers) {
	river.AddWorker(workers, jobs.NewCounterReconcileWorker(m.infra.EntClient))
}

// Dispatcher exposes the mutation dispatcher so additional observers
// (eventing, cache invalidation) can be registered before startup.
func (m *TopologyModule) Dispatcher() *domain.MutationDispatcher {
	return m.dispatcher
}

// Shutdown implements Module.
func (m *TopologyModule) Shutdown(context.Context) error { return nil }
