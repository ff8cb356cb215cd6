package domain

// ShipSpawn asks the companion proxy at ServerIP to spawn a ship. Field tags are the /proxySpawn body keys.
type ShipSpawn struct {
	ServerIP string `json:"server_ip"`
	Callsign string `json:"callsign"`
	Template string `json:"template"`
	Drive    string `json:"drive"`
	Password string `json:"password"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation int    `json:"rota"`
}

// ShipDestroy asks the companion proxy at ServerIP to destroy the ship with Callsign.
type ShipDestroy struct {
	ServerIP string `json:"server_ip"`
	Callsign string `json:"callsign"`
}
