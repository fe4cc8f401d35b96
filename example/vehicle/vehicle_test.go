package vehicle

import (
	"testing"

	"github.com/sclib/scobject/object"
)

func TestCarIsAVehicle(t *testing.T) {
	vk := NewVehicleKlass()
	defer vk.Unref()
	ck := NewCarKlass(vk)
	defer ck.Unref()

	car := object.NewFromKlass(ck, nil)
	defer car.Unref()

	if !object.IsType(car, CarType) {
		t.Fatal("car does not satisfy CarType")
	}
	if !object.IsType(car, VehicleType) {
		t.Fatal("car does not satisfy VehicleType")
	}
	if !object.IsType(car, object.BaseTypeName) {
		t.Fatal("car does not satisfy object.BaseTypeName")
	}
	if object.IsType(car, "vehicle.Boat") {
		t.Fatal("car incorrectly satisfies an unrelated type")
	}
}

func TestAcceleratePanicsOnNonVehicle(t *testing.T) {
	o := object.KlassNew()
	defer o.Unref()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Accelerate to panic on a non-vehicle object")
		}
	}()
	Accelerate(o)
}

func TestAccelerateChainsToVehicle(t *testing.T) {
	vk := NewVehicleKlass()
	defer vk.Unref()
	ck := NewCarKlass(vk)
	defer ck.Unref()

	car := object.NewFromKlass(ck, nil)
	defer car.Unref()

	// No assertion on stdout: this only confirms the chained dispatch runs
	// to completion without panicking, across both the car-specific
	// override and the vehicle's generic accelerate it calls into.
	Accelerate(car)
}
