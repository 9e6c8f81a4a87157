package constants

// Staff permissions
const (
	// Role permissions
	PermAdminFull     = "lodge-booking.admin.full-permit"
	PermManagerFull   = "lodge-booking.manager.full-permit"
	PermFrontDeskFull = "lodge-booking.frontdesk.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	BookingWritePermissions = []string{
		PermAdminFull,
		PermManagerFull,
		PermFrontDeskFull,
	}

	AdminPermissions = []string{
		PermAdminFull,
		PermManagerFull,
	}
)

// RolePermissions maps a role name to the permission strings it grants.
var RolePermissions = map[string][]string{
	"admin":     {PermAdminFull},
	"manager":   {PermManagerFull},
	"frontdesk": {PermFrontDeskFull},
}
