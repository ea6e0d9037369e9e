package models

type UserRole string

const (
	UserRoleAdmin          UserRole = "ADMIN_ROLE"
	UserRoleQualityManager UserRole = "QUALITY_MANAGER_ROLE"
	UserRoleGeneralManager UserRole = "GENERAL_MANAGER_ROLE"
	UserRoleDepartmentHead UserRole = "DEPARTMENT_HEAD_ROLE"
	UserRoleEmployee       UserRole = "EMPLOYEE_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:          "Администратор",
	UserRoleQualityManager: "Менеджер по качеству",
	UserRoleGeneralManager: "Генеральный директор",
	UserRoleDepartmentHead: "Руководитель подразделения",
	UserRoleEmployee:       "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) Validate() bool {
	_, exist := roleHumanName[r]
	return exist
}

// IsManagement роли, получающие эскалации по запросам без ответа подразделения
func (r UserRole) IsManagement() bool {
	return r == UserRoleGeneralManager || r == UserRoleQualityManager
}

const SystemUser = "Система"
