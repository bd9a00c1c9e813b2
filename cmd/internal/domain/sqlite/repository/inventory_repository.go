package repository

import (
	"dealership/cmd/internal/domain/entity"
	"errors"
	"gorm.io/gorm"
)

type DefaultInventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *DefaultInventoryRepository {
	return &DefaultInventoryRepository{db: db}
}

func (r *DefaultInventoryRepository) Save(item *entity.InventoryItem) error {
	return r.db.Create(item).Error
}

// FindAll returns every item in insertion order with its financing options loaded.
func (r *DefaultInventoryRepository) FindAll() ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem
	err := r.withOptions().Order("id asc").Find(&items).Error
	return items, err
}

// FindFirstByVIN returns the earliest item carrying vin, or nil when there is none.
func (r *DefaultInventoryRepository) FindFirstByVIN(vin string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.withOptions().Where("vin = ?", vin).Order("id asc").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindWithFinancing returns, in insertion order, the items that have at least one option.
func (r *DefaultInventoryRepository) FindWithFinancing() ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem
	err := r.withOptions().
		Where("EXISTS (SELECT 1 FROM financing_options fo WHERE fo.inventory_item_id = inventory_items.id)").
		Order("id asc").
		Find(&items).Error
	return items, err
}

// ListVINs returns the VIN of every item in insertion order, duplicates included.
func (r *DefaultInventoryRepository) ListVINs() ([]string, error) {
	var vins []string
	err := r.db.Model(&entity.InventoryItem{}).Order("id asc").Pluck("vin", &vins).Error
	return vins, err
}

// AppendFinancingOption adds option to the end of the item's option list.
func (r *DefaultInventoryRepository) AppendFinancingOption(item *entity.InventoryItem, option *entity.FinancingOption) error {
	if item == nil || item.ID == 0 {
		return errors.New("cannot append financing option to an unsaved item")
	}

	option.InventoryItemID = item.ID
	if err := r.db.Create(option).Error; err != nil {
		return err
	}
	item.FinancingOptions = append(item.FinancingOptions, *option)
	return nil
}

func (r *DefaultInventoryRepository) withOptions() *gorm.DB {
	return r.db.Preload("FinancingOptions", func(db *gorm.DB) *gorm.DB {
		return db.Order("financing_options.id asc")
	})
}
