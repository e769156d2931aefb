package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN_ROLE"
	UserRoleHR       UserRole = "HR_ROLE"
	UserRoleDeptHead UserRole = "DEPT_HEAD_ROLE"
	UserRoleMD       UserRole = "MD_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:    "Administrator",
	UserRoleHR:       "HR manager",
	UserRoleDeptHead: "Department head",
	UserRoleMD:       "Managing director",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

func (r UserRole) Validate() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "System"

type OrgType string

const (
	OrgTypeCompany     OrgType = "company"
	OrgTypeConsultancy OrgType = "consultancy"
)

func (o OrgType) Validate() bool {
	return o == OrgTypeCompany || o == OrgTypeConsultancy
}
