package repositories

import (
	"filmrating-server/db"
	"filmrating-server/entities"

	"gorm.io/gorm/clause"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) DataRepository[entities.User] {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Find(&users).Error
	return users, err
}

func (r *userPgRepository) GetByID(id int) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByString(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) Add(user *entities.User) error {
	// Ratings are never written through this repository
	return r.db.GetDB().Omit(clause.Associations).Create(user).Error
}

func (r *userPgRepository) Update(existing, incoming *entities.User) error {
	existing.ID = incoming.ID
	existing.LastName = incoming.LastName
	existing.FirstName = incoming.FirstName
	existing.Mobile = incoming.Mobile
	existing.Email = incoming.Email
	existing.Password = incoming.Password
	existing.Street = incoming.Street
	existing.PostalCode = incoming.PostalCode
	existing.City = incoming.City
	existing.Country = incoming.Country
	existing.Latitude = incoming.Latitude
	existing.Longitude = incoming.Longitude
	existing.Ratings = incoming.Ratings
	return r.db.GetDB().Omit(clause.Associations).Save(existing).Error
}

func (r *userPgRepository) Delete(user *entities.User) error {
	return r.db.GetDB().Delete(user).Error
}
