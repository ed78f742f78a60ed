package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Contestant is a registered student.
type Contestant struct {
	Id           int       `gorm:"primaryKey"`
	FullName     string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	State        string    `gorm:"not null"`
	Gender       Gender    `gorm:"not null"`
	GroupId      *int      `gorm:"null"`
	CategoryId   *int      `gorm:"null"`
	Course       string    `gorm:"not null"`
	PhoneNumber  string    `gorm:"not null"`
	RegisteredAt time.Time `gorm:"not null;autoCreateTime"`

	Group    *Group    `gorm:"foreignKey:GroupId;constraint:OnDelete:SET NULL"`
	Category *Category `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL"`
}

// GroupName is empty for contestants without a group.
func (c *Contestant) GroupName() string {
	if c.Group == nil {
		return ""
	}
	return c.Group.Name
}

type ContestantRepository struct {
	DB *gorm.DB
}

func NewContestantRepository(db *gorm.DB) *ContestantRepository {
	return &ContestantRepository{DB: db}
}

func (r *ContestantRepository) GetContestantById(contestantId int) (*Contestant, error) {
	var contestant Contestant
	result := r.DB.Preload("Group").Preload("Category").First(&contestant, contestantId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &contestant, nil
}

func (r *ContestantRepository) FindAll() ([]*Contestant, error) {
	contestants := make([]*Contestant, 0)
	result := r.DB.Preload("Group").Preload("Category").Order("full_name, id").Find(&contestants)
	if result.Error != nil {
		return nil, result.Error
	}
	return contestants, nil
}

func (r *ContestantRepository) Save(contestant *Contestant) (*Contestant, error) {
	result := r.DB.Omit("Group", "Category").Save(contestant)
	if result.Error != nil {
		return nil, result.Error
	}
	return contestant, nil
}

func (r *ContestantRepository) Delete(contestantId int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		registrationIds := tx.Model(&Registration{}).Select("id").Where("contestant_id = ?", contestantId)
		if err := tx.Where("registration_id IN (?)", registrationIds).Delete(&Result{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contestant_id = ?", contestantId).Delete(&Registration{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Contestant{}, contestantId)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateWithEvents stores a new contestant registered for eventIds in one transaction.
func (r *ContestantRepository) CreateWithEvents(contestant *Contestant, eventIds []int) (*Contestant, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Group", "Category").Create(contestant).Error; err != nil {
			return err
		}
		return replaceRegistrations(tx, contestant.Id, eventIds)
	})
	if err != nil {
		return nil, err
	}
	return contestant, nil
}

// UpsertWithEvents creates or updates the contestant identified by email and makes its
// registrations match eventIds exactly, in one transaction.
func (r *ContestantRepository) UpsertWithEvents(contestant *Contestant, eventIds []int) (*Contestant, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Omit("Group", "Category").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "state", "gender", "group_id", "category_id", "course", "phone_number"}),
		}).Create(contestant).Error
		if err != nil {
			return err
		}
		// the returned id is not reliable on conflict for every driver
		if err := tx.Select("id").First(contestant, "email = ?", contestant.Email).Error; err != nil {
			return err
		}
		return replaceRegistrations(tx, contestant.Id, eventIds)
	})
	if err != nil {
		return nil, err
	}
	return contestant, nil
}
