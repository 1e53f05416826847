package models

type Worker struct {
	WorkerID     int    `gorm:"column:WorkerId;primaryKey;autoIncrement:false" json:"WorkerId"`
	WorkerName   string `gorm:"column:WorkerName;size:255;not null" json:"WorkerName"`
	MobileNumber string `gorm:"column:MobileNumber;size:20" json:"MobileNumber"`
	Skills       string `gorm:"column:Skills;type:text" json:"Skills"`
}

func (Worker) TableName() string { return "worker" }
