package domain

// AccessoriesChecklist records which accessories were present at handover.
type AccessoriesChecklist struct {
	EngineOil  bool `json:"engine_oil"`
	Battery    bool `json:"battery"`
	CarCharger bool `json:"car_charger"`
	Petrol     bool `json:"petrol"`
	BrakeOil   bool `json:"brake_oil"`
	TapLCD     bool `json:"tap_lcd"`
	SpareWheel bool `json:"spare_wheel"`
	WheelCap   bool `json:"wheel_cap"`
	Lights     bool `json:"lights"`
	JackPana   bool `json:"jack_pana"`
	Shades     bool `json:"shades"`
}

// VehicleCondition is the handover inspection sheet. Fields hold either
// "good"/"bad", "yes"/"no", or a fuel level; empty means not inspected.
type VehicleCondition struct {
	TyresCondition string `json:"tyres_condition,omitempty"`
	TyrePressure   string `json:"tyre_pressure,omitempty"`
	ScratchesDents string `json:"scratches_dents,omitempty"`
	FrontBumper    string `json:"front_bumper,omitempty"`
	BackBumper     string `json:"back_bumper,omitempty"`
	SideMirrors    string `json:"side_mirrors,omitempty"`
	WindowsGlass   string `json:"windows_glass,omitempty"`
	ACWorking      string `json:"ac_working,omitempty"`
	HeaterWorking  string `json:"heater_working,omitempty"`
	Horn           string `json:"horn,omitempty"`
	Wipers         string `json:"wipers,omitempty"`
	SeatCondition  string `json:"seat_condition,omitempty"`
	SeatBelts      string `json:"seat_belts,omitempty"`
	FuelLevel      string `json:"fuel_level,omitempty"`
	Mileage        string `json:"mileage,omitempty"`
	Radiator       string `json:"radiator,omitempty"`
}

// DentsScratchesReport documents pre-existing body damage with photos.
type DentsScratchesReport struct {
	Notes     string   `json:"notes,omitempty"`
	ImageURLs []string `json:"image_urls,omitempty"`
}
