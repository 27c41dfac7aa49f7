package main

// specific heat of dry air, J/kg K
func get_c_a() float64 {
	return 1000.0
}

// density of air, kg/m3
func get_rho_a() float64 {
	return 1.2
}

// latent heat of vaporization of water, J/kg
func get_l_wtr() float64 {
	return 2496000.0
}

// upper bound on the dry air mass flow rate, kg/s
func get_m_max() float64 {
	return 100.0
}

// initial guess for the apparatus dew point temperature, degree C
func get_theta_s_0() float64 {
	return 5.0
}
