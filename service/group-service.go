package service

import (
	"festival/repository"

	"gorm.io/gorm"
)

type GroupService struct {
	groupRepository *repository.GroupRepository
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{
		groupRepository: repository.NewGroupRepository(db),
	}
}

func (e *GroupService) GetGroups() ([]*repository.Group, error) {
	return e.groupRepository.FindAll()
}

func (e *GroupService) GetGroupById(groupId int) (*repository.Group, error) {
	return e.groupRepository.GetGroupById(groupId)
}

func (e *GroupService) SaveGroup(group *repository.Group) (*repository.Group, error) {
	return e.groupRepository.Save(group)
}

func (e *GroupService) DeleteGroup(groupId int) error {
	return e.groupRepository.Delete(groupId)
}
