// Package main seeds a farm topology from a YAML file.
//
// Seeding is idempotent: rows that already exist (by ID) are skipped, so
// the command can be re-run against a live database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"aquafarm.io/steward/ent"
	"aquafarm.io/steward/ent/department"
	"aquafarm.io/steward/ent/equipment"
	"aquafarm.io/steward/ent/equipmentsystem"
	"aquafarm.io/steward/ent/site"
	"aquafarm.io/steward/ent/subequipment"
	entsystem "aquafarm.io/steward/ent/system"
	"aquafarm.io/steward/internal/config"
	"aquafarm.io/steward/internal/infrastructure"
	"aquafarm.io/steward/internal/pkg/logger"
)

// Topology is the YAML seed document.
type Topology struct {
	TenantID  string     `yaml:"tenant_id"`
	CreatedBy string     `yaml:"created_by"`
	Sites     []SiteSeed `yaml:"sites"`
	Links     []LinkSeed `yaml:"links"`
}

type SiteSeed struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Code        string           `yaml:"code"`
	Location    string           `yaml:"location"`
	Departments []DepartmentSeed `yaml:"departments"`
	Systems     []SystemSeed     `yaml:"systems"`
}

type DepartmentSeed struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Code      string          `yaml:"code"`
	Equipment []EquipmentSeed `yaml:"equipment"`
	Systems   []SystemSeed    `yaml:"systems"`
}

type EquipmentSeed struct {
	ID             string             `yaml:"id"`
	Name           string             `yaml:"name"`
	Code           string             `yaml:"code"`
	ParentID       string             `yaml:"parent_id"`
	IsTank         bool               `yaml:"is_tank"`
	CurrentBiomass float64            `yaml:"current_biomass"`
	SubEquipment   []SubEquipmentSeed `yaml:"sub_equipment"`
}

type SubEquipmentSeed struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type SystemSeed struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Code           string `yaml:"code"`
	ParentSystemID string `yaml:"parent_system_id"`
}

type LinkSeed struct {
	EquipmentID string `yaml:"equipment_id"`
	SystemID    string `yaml:"system_id"`
	IsPrimary   bool   `yaml:"is_primary"`
	Criticality string `yaml:"criticality"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var topologyPath string
	flag.StringVar(&topologyPath, "f", "topology.yaml", "path to the YAML topology file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	topo, err := loadTopology(topologyPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	logger.Info("Seeding farm topology",
		zap.String("file", topologyPath),
		zap.String("tenant_id", topo.TenantID),
		zap.Int("sites", len(topo.Sites)),
	)

	if err := seedTopology(ctx, db.EntClient, topo); err != nil {
		return err
	}

	logger.Info("Topology seeding completed successfully")
	return nil
}

// loadTopology parses and validates the YAML seed document.
func loadTopology(path string) (*Topology, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topology file: %w", err)
	}

	var topo Topology
	if err := yaml.Unmarshal(raw, &topo); err != nil {
		return nil, fmt.Errorf("parse topology file: %w", err)
	}
	if err := topo.Validate(); err != nil {
		return nil, fmt.Errorf("invalid topology: %w", err)
	}
	return &topo, nil
}

// Validate checks the seed document for fields ent would reject anyway,
// so the error surfaces before any row is written.
func (t *Topology) Validate() error {
	if t.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if t.CreatedBy == "" {
		t.CreatedBy = "seed"
	}
	for i, s := range t.Sites {
		if s.Name == "" || s.Code == "" {
			return fmt.Errorf("sites[%d]: name and code are required", i)
		}
		for j, d := range s.Departments {
			if d.Name == "" || d.Code == "" {
				return fmt.Errorf("sites[%d].departments[%d]: name and code are required", i, j)
			}
		}
	}
	for i, l := range t.Links {
		if l.EquipmentID == "" || l.SystemID == "" {
			return fmt.Errorf("links[%d]: equipment_id and system_id are required", i)
		}
	}
	return nil
}

func seedTopology(ctx context.Context, client *ent.Client, topo *Topology) error {
	for _, s := range topo.Sites {
		siteID, err := seedSite(ctx, client, topo, s)
		if err != nil {
			return fmt.Errorf("seed site %q: %w", s.Name, err)
		}
		for _, d := range s.Departments {
			if err := seedDepartment(ctx, client, topo, siteID, d); err != nil {
				return fmt.Errorf("seed department %q: %w", d.Name, err)
			}
		}
		for _, sys := range s.Systems {
			if err := seedSystem(ctx, client, topo, siteID, "", sys); err != nil {
				return fmt.Errorf("seed system %q: %w", sys.Name, err)
			}
		}
	}
	for _, l := range topo.Links {
		if err := seedLink(ctx, client, topo, l); err != nil {
			return fmt.Errorf("seed link %s->%s: %w", l.EquipmentID, l.SystemID, err)
		}
	}
	return nil
}

func seedSite(ctx context.Context, client *ent.Client, topo *Topology, s SiteSeed) (string, error) {
	id := orNewID(s.ID)
	exists, err := client.Site.Query().Where(site.IDEQ(id)).Exist(ctx)
	if err != nil {
		return "", err
	}
	if exists {
		logger.Info("site already exists, skipping", zap.String("id", id))
		return id, nil
	}

	_, err = client.Site.Create().
		SetID(id).
		SetTenantID(topo.TenantID).
		SetName(s.Name).
		SetCode(s.Code).
		SetLocation(s.Location).
		SetCreatedBy(topo.CreatedBy).
		Save(ctx)
	return id, err
}

func seedDepartment(ctx context.Context, client *ent.Client, topo *Topology, siteID string, d DepartmentSeed) error {
	id := orNewID(d.ID)
	exists, err := client.Department.Query().Where(department.IDEQ(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		_, err = client.Department.Create().
			SetID(id).
			SetTenantID(topo.TenantID).
			SetName(d.Name).
			SetCode(d.Code).
			SetSiteID(siteID).
			SetCreatedBy(topo.CreatedBy).
			Save(ctx)
		if err != nil {
			return err
		}
	}

	for _, e := range d.Equipment {
		if err := seedEquipment(ctx, client, topo, id, e); err != nil {
			return fmt.Errorf("equipment %q: %w", e.Name, err)
		}
	}
	for _, sys := range d.Systems {
		if err := seedSystem(ctx, client, topo, "", id, sys); err != nil {
			return fmt.Errorf("system %q: %w", sys.Name, err)
		}
	}
	return nil
}

func seedEquipment(ctx context.Context, client *ent.Client, topo *Topology, departmentID string, e EquipmentSeed) error {
	id := orNewID(e.ID)
	exists, err := client.Equipment.Query().Where(equipment.IDEQ(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		create := client.Equipment.Create().
			SetID(id).
			SetTenantID(topo.TenantID).
			SetName(e.Name).
			SetCode(e.Code).
			SetDepartmentID(departmentID).
			SetIsTank(e.IsTank).
			SetCurrentBiomass(e.CurrentBiomass).
			SetSubEquipmentCount(len(e.SubEquipment)).
			SetCreatedBy(topo.CreatedBy)
		if e.ParentID != "" {
			create = create.SetParentEquipmentID(e.ParentID)
		}
		if _, err := create.Save(ctx); err != nil {
			return err
		}
	}

	for _, sub := range e.SubEquipment {
		subID := orNewID(sub.ID)
		subExists, err := client.SubEquipment.Query().Where(subequipment.IDEQ(subID)).Exist(ctx)
		if err != nil {
			return err
		}
		if subExists {
			continue
		}
		_, err = client.SubEquipment.Create().
			SetID(subID).
			SetTenantID(topo.TenantID).
			SetName(sub.Name).
			SetParentEquipmentID(id).
			Save(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedSystem(ctx context.Context, client *ent.Client, topo *Topology, siteID, departmentID string, s SystemSeed) error {
	id := orNewID(s.ID)
	exists, err := client.System.Query().Where(entsystem.IDEQ(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	create := client.System.Create().
		SetID(id).
		SetTenantID(topo.TenantID).
		SetName(s.Name).
		SetCode(s.Code).
		SetCreatedBy(topo.CreatedBy)
	if siteID != "" {
		create = create.SetSiteID(siteID)
	}
	if departmentID != "" {
		create = create.SetDepartmentID(departmentID)
	}
	if s.ParentSystemID != "" {
		create = create.SetParentSystemID(s.ParentSystemID)
	}
	_, err = create.Save(ctx)
	return err
}

func seedLink(ctx context.Context, client *ent.Client, topo *Topology, l LinkSeed) error {
	exists, err := client.EquipmentSystem.Query().
		Where(
			equipmentsystem.TenantIDEQ(topo.TenantID),
			equipmentsystem.EquipmentIDEQ(l.EquipmentID),
			equipmentsystem.SystemIDEQ(l.SystemID),
		).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	criticality := equipmentsystem.CriticalityLevelMEDIUM
	if l.Criticality != "" {
		criticality = equipmentsystem.CriticalityLevel(l.Criticality)
	}

	_, err = client.EquipmentSystem.Create().
		SetID(orNewID("")).
		SetTenantID(topo.TenantID).
		SetEquipmentID(l.EquipmentID).
		SetSystemID(l.SystemID).
		SetIsPrimary(l.IsPrimary).
		SetCriticalityLevel(criticality).
		Save(ctx)
	return err
}

// orNewID returns the given ID or a fresh UUIDv7 when empty.
func orNewID(id string) string {
	if id != "" {
		return id
	}
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
