package main

import (
	"math"
)

/*
Humidity ratio of moist air.

    Args:
        theta: air temperature, degree C
        phi: relative humidity, 0-1

    Returns:
        humidity ratio, kg/kgDA
*/
func get_w(theta, phi float64) float64 {
	p_v := phi * get_p_vs(theta)

	return get_x(p_v)
}

/*
Humidity ratio on the saturation curve.

    Args:
        theta: air temperature, degree C

    Returns:
        saturation humidity ratio, kg/kgDA
*/
func get_w_s(theta float64) float64 {
	return get_w(theta, 1.0)
}

/*
Slope of the saturation curve d w_s / d theta, evaluated by a centered
difference. Used to linearize the coil characteristic around a trial
apparatus dew point.

    Args:
        theta: air temperature, degree C

    Returns:
        slope, kg/kgDA K
*/
func get_w_sp(theta float64) float64 {
	const d_theta = 0.001

	return (get_w_s(theta+d_theta) - get_w_s(theta-d_theta)) / (2.0 * d_theta)
}

/*
Relative humidity of moist air.

    Args:
        theta: air temperature, degree C
        w: humidity ratio, kg/kgDA

    Returns:
        relative humidity, 0-1
*/
func get_phi(theta, w float64) float64 {
	p_v := get_p_v(w)

	return p_v / get_p_vs(theta)
}

/*
Humidity ratio from water vapor pressure.

    Args:
        p_v: water vapor pressure, Pa

    Returns:
        humidity ratio, kg/kgDA
*/
func get_x(p_v float64) float64 {
	f := _get_f()

	return 0.622 * p_v / (f - p_v)
}

/*
Water vapor pressure from humidity ratio.

    Args:
        w: humidity ratio, kg/kgDA

    Returns:
        water vapor pressure, Pa
*/
func get_p_v(w float64) float64 {
	f := _get_f()

	return f * w / (w + 0.622)
}

/*
Saturation water vapor pressure.

    Args:
        theta: air temperature, degree C

    Returns:
        saturation water vapor pressure, Pa
*/
func get_p_vs(theta float64) float64 {
	t := theta + 273.15

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	var p_vs float64
	if theta >= 0.0 {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	} else {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
	}

	return p_vs
}

/*
Atmospheric pressure.

    Returns:
        atmospheric pressure, Pa
*/
func _get_f() float64 {
	return 101325.0
}
