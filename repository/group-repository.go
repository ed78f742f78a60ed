package repository

import (
	"gorm.io/gorm"
)

// Group is a school or team contestants represent.
type Group struct {
	Id   int    `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) GetGroupById(groupId int) (*Group, error) {
	var group Group
	result := r.DB.First(&group, groupId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *GroupRepository) GetGroupByName(name string) (*Group, error) {
	var group Group
	result := r.DB.First(&group, "name = ?", name)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *GroupRepository) FindAll() ([]*Group, error) {
	groups := make([]*Group, 0)
	result := r.DB.Order("name").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

func (r *GroupRepository) Save(group *Group) (*Group, error) {
	result := r.DB.Save(group)
	if result.Error != nil {
		return nil, result.Error
	}
	return group, nil
}

func (r *GroupRepository) Delete(groupId int) error {
	result := r.DB.Delete(&Group{}, groupId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
