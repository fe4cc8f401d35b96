// Package vehicle is a worked example of klass delegation: a "vehicle" base
// klass and a "car" klass that delegates to it, demonstrating method
// overriding through the delegate-lookup pattern used by the C library's own
// vehicle_accelerate example (original_source/example/vehicles/vehicle.c):
// an override does its own work, then calls MethodSearch with skipTop=true
// against the object it was found on to reach the next implementation up
// the delegate chain, the way a derived class calls its superclass's
// method.
//
// This package is reference usage only: nothing in the object package
// imports it.
package vehicle

import (
	"fmt"

	"github.com/sclib/scobject/object"
)

// VehicleType and CarType are the type strings a vehicle or car instance
// answers true for from object.IsType.
const (
	VehicleType = "vehicle.Vehicle"
	CarType     = "vehicle.Car"
)

var keyAccelerate = object.MethodKeyOf("vehicle.accelerate")
var keyIsType = object.MethodKeyOf("is_type")

// NewVehicleKlass builds the base vehicle klass, delegating to a fresh root
// klass for the framework defaults (finalize, write) and overriding is_type
// and accelerate.
func NewVehicleKlass() *object.Object {
	root := object.KlassNew()
	vk := object.NewFromKlass(root, nil)

	object.MethodRegister(vk, keyIsType, isTypeChaining(VehicleType))
	object.MethodRegister(vk, keyAccelerate, func(top, match *object.Object, args ...any) any {
		fmt.Println("vehicle: engine turning over")
		return nil
	})

	return vk
}

// NewCarKlass builds a car klass delegating to vk. Its accelerate override
// does car-specific work, then chains to vk's generic accelerate — the
// "call super" half of the vehicle.c pattern.
func NewCarKlass(vk *object.Object) *object.Object {
	ck := object.NewFromKlass(vk, nil)

	object.MethodRegister(ck, keyIsType, isTypeChaining(CarType))
	object.MethodRegister(ck, keyAccelerate, func(top, match *object.Object, args ...any) any {
		fmt.Println("car: revving turbo")

		var next *object.Object
		fn := object.MethodSearch(match, keyAccelerate, true, &next)
		if fn != nil {
			fn(top, next)
		}
		return nil
	})

	return ck
}

// Accelerate dispatches to o's accelerate method, asserting o is at least a
// vehicle first. It is the package's one public entry point, mirroring the
// C original's plain-function call convention (vehicle_accelerate(o)) rather
// than requiring callers to know about keyAccelerate.
func Accelerate(o *object.Object) {
	if !object.IsType(o, VehicleType) {
		panic(fmt.Sprintf("vehicle: %v does not satisfy %q", o, VehicleType))
	}

	var m *object.Object
	fn := object.MethodSearch(o, keyAccelerate, false, &m)
	if fn != nil {
		fn(o, m)
	}
}

// isTypeChaining builds an is_type override recognizing typestr, falling
// back to the next is_type implementation up match's own delegate chain for
// anything else — so a car instance still answers true for VehicleType and
// for the base klass's own type name.
func isTypeChaining(typestr string) object.Method {
	return func(top, match *object.Object, args ...any) any {
		want, _ := args[0].(string)
		if want == typestr {
			return true
		}

		var next *object.Object
		fn := object.MethodSearch(match, keyIsType, true, &next)
		if fn == nil {
			return false
		}
		ok, _ := fn(top, next, want).(bool)
		return ok
	}
}
