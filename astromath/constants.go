package astromath

import "math"

// Physical constants in cgs units.
const (
	Boltzmann      = 1.38e-16   // erg/K
	Avogadro       = 6.022e23   // 1/mol
	ElectronVolt   = 1.602e-12  // erg
	RadiationConst = 7.5646e-15 // erg cm^-3 K^-4
	StefanBoltzman = 5.67e-5    // erg cm^-2 s^-1 K^-4
	Gravitational  = 6.674e-8   // cm^3 g^-1 s^-2
	Planck         = 6.626e-27  // erg s
	PlanckReduced  = 1.0546e-27 // erg s
	PlanckEV       = 4.1357e-15 // eV s
	PlanckRedEV    = 6.582e-16  // eV s
	SpeedOfLight   = 2.998e10   // cm/s
)

// Particle physics, cgs.
const (
	ElectronCharge = 4.803e-10  // esu
	ElectronMass   = 9.11e-28   // g
	ProtonMass     = 1.6726e-24 // g
	NeutronMass    = 1.6749e-24 // g
	HydrogenMass   = 1.6733e-24 // g
	AtomicMassUnit = 1.66054e-24
	ThomsonCross   = 6.65e-25 // cm^2
)

// Solar system, cgs.
const (
	SolarLuminosity = 3.828e33  // erg/s
	SolarRadius     = 6.96e10   // cm
	SolarMass       = 1.989e33  // g
	EarthMass       = 5.976e27  // g
	EarthRadius     = 6.378e8   // cm
	JupiterMass     = 1.898e30  // g
	AstronomicalU   = 1.496e13  // cm
	Parsec          = 3.086e18  // cm
	LightYear       = 9.463e17  // cm
	Jansky          = 1e-23     // erg s^-1 cm^-2 Hz^-1
	Angstrom        = 1e-8      // cm
	SpeedOfLightAng = 2.998e18  // Å/s
)

// Angles in radians.
const (
	ArcsecRad = 4.848e-6
	ArcminRad = 2.9089e-4
	DegreeRad = math.Pi / 180
)

// HubbleUnit is 1 km/s/Mpc expressed in 1/s; Hubble70 is H0 = 70 km/s/Mpc.
const (
	HubbleUnit = 1 / (Parsec * 10)
	Hubble70   = 70 * HubbleUnit
)

// Time in seconds.
const (
	Year         = 3.156e7
	SiderealDay  = 86164.091
	SolarDay     = 86400.0
	SecondsPerHr = 3600.0
)

// SI prefixes.
const (
	Atto  = 1e-18
	Femto = 1e-15
	Pico  = 1e-12
	Nano  = 1e-9
	Micro = 1e-6
	Milli = 1e-3
	Kilo  = 1e3
	Mega  = 1e6
	Giga  = 1e9
	Tera  = 1e12
	Peta  = 1e15
	Exa   = 1e18
)
