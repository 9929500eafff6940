package db

import (
	"errors"

	"gorm.io/gorm"

	"hotel-carbon-server/model"
)

type TravelAgentDAO struct {
	db *gorm.DB
}

func NewTravelAgentDAO(db *gorm.DB) *TravelAgentDAO {
	return &TravelAgentDAO{db: db}
}

func (agentDAO *TravelAgentDAO) GetAgentById(id int) (model.TravelAgent, error) {
	var agent model.TravelAgent
	result := agentDAO.db.First(&agent, id)
	return agent, result.Error
}

func (agentDAO *TravelAgentDAO) GetAgentByEmail(email string) (model.TravelAgent, error) {
	var agent model.TravelAgent
	result := agentDAO.db.Where("email = ?", email).First(&agent)
	return agent, result.Error
}

func (agentDAO *TravelAgentDAO) EmailExists(email string) (bool, error) {
	_, err := agentDAO.GetAgentByEmail(email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (agentDAO *TravelAgentDAO) AddAgent(agent model.TravelAgent) (model.TravelAgent, error) {
	result := agentDAO.db.Create(&agent)
	return agent, result.Error
}
