package model

// Account 账号表 — 对应 accounts
//
// 账号是登录主体，与学生/导师的档案记录是两条独立的数据：
// 同一个人的账号 id 与档案 id 可能一致也可能不一致，
// 这正是歧义 ID 解析（resolver）存在的原因。
type Account struct {
	AccountID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	DisplayName  string `gorm:"type:varchar(100);not null"                     json:"display_name"`
	Role         string `gorm:"type:varchar(20);not null;default:'student'"    json:"role"` // student | reviewer | admin
	BaseModel
}

// TableName 指定表名
func (Account) TableName() string { return "accounts" }

