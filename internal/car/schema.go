package car

// Array sizes of the per vehicle curve tables.
const (
	curveSize      = 0x13 // accele data, handle data
	slideSize      = 0x1F
	wideCurveSize  = 0x20 // brake data, dash handle
	damageDataSize = 5
)

// Field describes the location of one value of the car stats table in the image.
type Field struct {
	Name  string
	Start int // offset of the value for vehicle 1
	Size  int // size in bytes of a single value, also the stride between vehicles

	// Shared values are stored once for all vehicles and ignore the vehicle index.
	Shared bool
}

// Offset returns the image offset of the field value for the given vehicle.
func (f Field) Offset(vehicle int) int {
	if f.Shared {
		return f.Start
	}
	return f.Start + (vehicle-1)*f.Size
}

// The table data for "vehicle 0" that precedes the accele data is assumed to be
// the enemy acceleration, it matches vehicle 1 and is skipped.
var (
	AcceleData     = Field{Name: "accele_data", Start: 0x14A4A, Size: curveSize}
	BrakeData      = Field{Name: "brake_data", Start: 0x14A96, Size: wideCurveSize, Shared: true}
	SlipVector     = Field{Name: "slip_vector", Start: 0x7A81, Size: 1}
	GripVecspd     = Field{Name: "grip_vecspd", Start: 0x7A85, Size: 1}
	SlipVecspd1    = Field{Name: "slip_vecspd1", Start: 0x7A89, Size: 1}
	SlipVecspd2    = Field{Name: "slip_vecspd2", Start: 0x7A8D, Size: 1}
	MaximumSpeed   = Field{Name: "maximum_speed", Start: 0x7A91, Size: 2}
	SlipSpeed      = Field{Name: "slip_speed", Start: 0x7A99, Size: 2}
	GripLimit      = Field{Name: "grip_limit", Start: 0x7AA1, Size: 2}
	FrictionData   = Field{Name: "friction_data", Start: 0x7AA9, Size: 1}
	ReduceData     = Field{Name: "reduce_data", Start: 0x7AAD, Size: 1}
	DamageCrash    = Field{Name: "damage_crash", Start: 0x7AB1, Size: 1}
	DamageGraze    = Field{Name: "damage_graze", Start: 0x7AB5, Size: 1}
	DamageOnWall   = Field{Name: "damage_on_wall", Start: 0x7AB9, Size: 1}
	DamageOutside  = Field{Name: "damage_out_of_course", Start: 0x7ABD, Size: 1}
	DamageBomb     = Field{Name: "damage_bomb", Start: 0x7AC1, Size: 1}
	RepairSpeed    = Field{Name: "repair_speed", Start: 0x7AC5, Size: 2}
	DamageSpeed    = Field{Name: "damage_speed", Start: 0x7ACD, Size: 2}
	PowerDownSens  = Field{Name: "power_down_sens", Start: 0x7AD5, Size: 2}
	MycarSpinInit  = Field{Name: "mycar_spin_init", Start: 0x7ADD, Size: 2}
	EnemySpinInit  = Field{Name: "enemy_spin_init", Start: 0x7AE5, Size: 2}
	DamageTime     = Field{Name: "damage_time", Start: 0x7AED, Size: 1}
	HandleData     = Field{Name: "handle_data", Start: 0x149AB, Size: curveSize}
	DashHandle     = Field{Name: "dash_handle", Start: 0x149F7, Size: wideCurveSize, Shared: true}
	DashHandleOver = Field{Name: "dash_handle_over", Start: 0x149F7 + wideCurveSize, Size: 1, Shared: true}
	SlideData      = Field{Name: "slide_data", Start: 0x14A18, Size: slideSize, Shared: true}
)

// DamageFields lists the damage values in the order of DamageCauses.
var DamageFields = [damageDataSize]Field{
	DamageCrash, DamageGraze, DamageOnWall, DamageOutside, DamageBomb,
}

// DamageCauses names the entries of Stats.DamageData.
var DamageCauses = [damageDataSize]string{
	"crash", "graze", "on wall", "out of course", "bomb",
}
