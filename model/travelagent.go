package model

import "time"

type TravelAgent struct {
	AgentID      int       `gorm:"column:id_agent;primaryKey;autoIncrement" json:"agent_id"`
	Name         string    `gorm:"column:name;type:text;not null" json:"name"`
	Email        string    `gorm:"column:email;type:text;not null;unique" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Company      string    `gorm:"column:company;type:text" json:"company"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (TravelAgent) TableName() string {
	return "travel_agent"
}
