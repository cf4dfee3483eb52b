package entity

// CartEmailField names the owner field of a cart item document. Everything
// else about a cart item (menu item reference, name, price, image) is opaque.
const CartEmailField = "email"
